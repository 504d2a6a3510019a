package repositories

import (
	"context"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository provides read access to the customer's general ledger.
type LedgerRepository interface {
	// ListEntries returns non-cancelled entries of the customer whose posting
	// date falls in [from, to], ordered by posting date then creation
	// ascending. When voucherType is non-empty only that type is returned;
	// otherwise every type except those in excludedTypes is returned.
	ListEntries(ctx context.Context, customerID string, from, to time.Time, voucherType string, excludedTypes []string) ([]domain.LedgerEntry, error)

	// OpeningBalance returns sum(debit - credit) over all non-cancelled
	// entries of the customer posted strictly before the given date. An empty
	// aggregate yields zero. The voucher-type filter of ListEntries is
	// deliberately not applied here.
	OpeningBalance(ctx context.Context, customerID string, before time.Time) (decimal.Decimal, error)
}
