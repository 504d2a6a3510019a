package repositories

import (
	"context"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceRepository provides read access to sales invoice records.
type InvoiceRepository interface {
	// ListInvoices returns submitted invoices of the customer whose posting
	// date falls in [from, to], newest first. Items are not loaded.
	ListInvoices(ctx context.Context, customerID string, from, to time.Time) ([]domain.SalesInvoice, error)

	// FindInvoiceByName returns the full invoice with items, or apperrors.ErrNotFound.
	FindInvoiceByName(ctx context.Context, name string) (*domain.SalesInvoice, error)

	// SumBillingSince returns the grand total of submitted invoices of the
	// customer posted on or after the given date.
	SumBillingSince(ctx context.Context, customerID string, since time.Time) (decimal.Decimal, error)

	// SumOutstanding returns the total outstanding amount across the
	// customer's submitted invoices.
	SumOutstanding(ctx context.Context, customerID string) (decimal.Decimal, error)
}
