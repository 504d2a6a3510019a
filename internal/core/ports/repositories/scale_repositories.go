package repositories

import (
	"context"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
)

// ScaleRepository provides access to scale devices and their weight logs.
type ScaleRepository interface {
	// FindDevice returns the device or apperrors.ErrNotFound.
	FindDevice(ctx context.Context, deviceID string) (*domain.ScaleDevice, error)

	// ListDevices returns every registered device.
	ListDevices(ctx context.Context) ([]domain.ScaleDevice, error)

	// SaveWeightLog inserts a new weight log row.
	SaveWeightLog(ctx context.Context, log domain.WeightLog) error

	// UpdateLastPing records the time the device was last heard from.
	UpdateLastPing(ctx context.Context, deviceID string, at time.Time) error

	// DeleteLogsBefore deletes the device's logs created before the cutoff
	// and returns the number of rows removed.
	DeleteLogsBefore(ctx context.Context, deviceID string, cutoff time.Time) (int64, error)
}
