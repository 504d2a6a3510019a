package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type scaleRepository struct {
	BaseRepository
}

// newScaleRepository creates a repository for scale devices and weight logs.
func newScaleRepository(pool *pgxpool.Pool) portsrepo.ScaleRepository {
	return &scaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ScaleRepository = (*scaleRepository)(nil)

func (r *scaleRepository) FindDevice(ctx context.Context, deviceID string) (*domain.ScaleDevice, error) {
	query := `
		SELECT device_id, active, retention_days, last_ping
		FROM scale_devices
		WHERE device_id = $1
	`
	var d domain.ScaleDevice
	err := r.Pool.QueryRow(ctx, query, deviceID).Scan(&d.DeviceID, &d.Active, &d.RetentionDays, &d.LastPing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying scale device %s: %w", deviceID, err)
	}
	return &d, nil
}

func (r *scaleRepository) ListDevices(ctx context.Context) ([]domain.ScaleDevice, error) {
	query := `
		SELECT device_id, active, retention_days, last_ping
		FROM scale_devices
		ORDER BY device_id ASC
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying scale devices: %w", err)
	}
	defer rows.Close()

	devices := []domain.ScaleDevice{}
	for rows.Next() {
		var d domain.ScaleDevice
		if err := rows.Scan(&d.DeviceID, &d.Active, &d.RetentionDays, &d.LastPing); err != nil {
			return nil, fmt.Errorf("error scanning scale device row: %w", err)
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scale device rows: %w", err)
	}
	return devices, nil
}

func (r *scaleRepository) SaveWeightLog(ctx context.Context, log domain.WeightLog) error {
	query := `
		INSERT INTO tanker_weight_logs (log_id, device_id, weight, status, raw_payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.Pool.Exec(ctx, query, log.LogID, log.DeviceID, log.Weight, log.Status, log.RawPayload, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting weight log for device %s: %w", log.DeviceID, err)
	}
	return nil
}

func (r *scaleRepository) UpdateLastPing(ctx context.Context, deviceID string, at time.Time) error {
	query := `UPDATE scale_devices SET last_ping = $2 WHERE device_id = $1`
	_, err := r.Pool.Exec(ctx, query, deviceID, at)
	if err != nil {
		return fmt.Errorf("error updating last ping of device %s: %w", deviceID, err)
	}
	return nil
}

func (r *scaleRepository) DeleteLogsBefore(ctx context.Context, deviceID string, cutoff time.Time) (int64, error) {
	query := `DELETE FROM tanker_weight_logs WHERE device_id = $1 AND created_at < $2`
	tag, err := r.Pool.Exec(ctx, query, deviceID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired logs of device %s: %w", deviceID, err)
	}
	return tag.RowsAffected(), nil
}
