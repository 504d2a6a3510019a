package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// scalePayloadMinParts is the minimum field count of a scale reading:
// device id, status, two filler fields, weight.
const scalePayloadMinParts = 5

// scaleService ingests weighing-scale readings and prunes old logs.
type scaleService struct {
	BaseService
	scaleRepo            portsrepo.ScaleRepository
	defaultRetentionDays int
	now                  func() time.Time
}

// ScaleServiceOption configures the scale service.
type ScaleServiceOption func(*scaleService)

// WithScaleClock overrides the clock, for tests.
func WithScaleClock(now func() time.Time) ScaleServiceOption {
	return func(s *scaleService) {
		s.now = now
	}
}

// NewScaleService creates a new scale service. defaultRetentionDays applies
// to devices that do not declare their own retention.
func NewScaleService(scaleRepo portsrepo.ScaleRepository, defaultRetentionDays int, options ...ScaleServiceOption) portssvc.ScaleSvc {
	svc := &scaleService{
		scaleRepo:            scaleRepo,
		defaultRetentionDays: defaultRetentionDays,
		now:                  time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ScaleSvc = (*scaleService)(nil)

// Ingest parses a pipe-delimited reading ("DEV01|ST|..|..|1234.5"), validates
// the device against the registry, stores the log and updates the device's
// last ping. Precondition failures surface as apperrors sentinels.
func (s *scaleService) Ingest(ctx context.Context, payload string) error {
	if strings.TrimSpace(payload) == "" {
		return fmt.Errorf("%w: no payload received", apperrors.ErrMalformed)
	}

	parts := strings.Split(payload, "|")
	if len(parts) < scalePayloadMinParts {
		return fmt.Errorf("%w: malformed data string", apperrors.ErrMalformed)
	}

	deviceID := strings.TrimSpace(parts[0])
	dataStatus := strings.TrimSpace(parts[1])
	rawWeight := strings.TrimSpace(parts[4])

	device, err := s.scaleRepo.FindDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Unregistered scale device", slog.String("device_id", deviceID))
			return fmt.Errorf("%w: device %s not registered", apperrors.ErrNotFound, deviceID)
		}
		s.LogError(ctx, err, "Scale device lookup failed", slog.String("device_id", deviceID))
		return fmt.Errorf("failed to look up device %s: %w", deviceID, err)
	}
	if !device.Active {
		s.LogWarn(ctx, "Reading from deactivated device", slog.String("device_id", deviceID))
		return apperrors.ErrInactive
	}

	weight, err := decimal.NewFromString(rawWeight)
	if err != nil {
		// Garbage weight fields arrive as zero, matching how the scales
		// report between loads.
		weight = decimal.Zero
	}

	now := s.now()
	log := domain.WeightLog{
		LogID:      uuid.NewString(),
		DeviceID:   deviceID,
		Weight:     weight,
		Status:     dataStatus,
		RawPayload: payload,
		CreatedAt:  now,
	}
	if err := s.scaleRepo.SaveWeightLog(ctx, log); err != nil {
		s.LogError(ctx, err, "Failed to save weight log", slog.String("device_id", deviceID))
		return fmt.Errorf("failed to save weight log: %w", err)
	}

	if err := s.scaleRepo.UpdateLastPing(ctx, deviceID, now); err != nil {
		s.LogError(ctx, err, "Failed to update device last ping", slog.String("device_id", deviceID))
		return fmt.Errorf("failed to update last ping for %s: %w", deviceID, err)
	}

	s.LogInfo(ctx, "Scale reading stored",
		slog.String("device_id", deviceID),
		slog.String("status", dataStatus),
		slog.String("weight", weight.String()))
	return nil
}

// CleanupExpiredLogs deletes each device's logs older than its retention
// window. One failing device does not stop the sweep.
func (s *scaleService) CleanupExpiredLogs(ctx context.Context) error {
	devices, err := s.scaleRepo.ListDevices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list devices for cleanup")
		return fmt.Errorf("failed to list devices: %w", err)
	}

	var sweepErr error
	for _, device := range devices {
		keepDays := device.RetentionDays
		if keepDays <= 0 {
			keepDays = s.defaultRetentionDays
		}
		cutoff := s.now().AddDate(0, 0, -keepDays)

		deleted, err := s.scaleRepo.DeleteLogsBefore(ctx, device.DeviceID, cutoff)
		if err != nil {
			s.LogError(ctx, err, "Failed to prune weight logs", slog.String("device_id", device.DeviceID))
			sweepErr = err
			continue
		}
		if deleted > 0 {
			s.LogInfo(ctx, "Pruned weight logs",
				slog.String("device_id", device.DeviceID),
				slog.Int64("deleted", deleted))
		}
	}
	return sweepErr
}
