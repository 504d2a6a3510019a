package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScaleDevice is a registered weighing-scale unit.
type ScaleDevice struct {
	DeviceID      string     `json:"deviceID"`
	Active        bool       `json:"active"`
	RetentionDays int        `json:"retentionDays"`
	LastPing      *time.Time `json:"lastPing"`
}

// WeightLog is one tanker-weight reading pushed by a scale device.
type WeightLog struct {
	LogID      string          `json:"logID"`
	DeviceID   string          `json:"deviceID"`
	Weight     decimal.Decimal `json:"weight"`
	Status     string          `json:"status"`
	RawPayload string          `json:"rawPayload"`
	CreatedAt  time.Time       `json:"createdAt"`
}
