package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils/daterange"
)

// ledgerService computes the customer ledger with running balances.
type ledgerService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerRepository
	defaultFilter string
	windowDays    int
	excludedTypes []string
	now           func() time.Time
}

// LedgerServiceOption configures the ledger service.
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the clock, for tests.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service. defaultFilter names the
// window used when the caller sends none; excludedTypes are hidden from the
// listing when no explicit voucher type is requested.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, defaultFilter string, windowDays int, excludedTypes []string, options ...LedgerServiceOption) portssvc.LedgerSvc {
	svc := &ledgerService{
		ledgerRepo:    ledgerRepo,
		defaultFilter: defaultFilter,
		windowDays:    windowDays,
		excludedTypes: excludedTypes,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// Statement resolves the date window, seeds the running balance with the
// opening aggregate and walks the ordered entries. The opening balance is
// never emitted as a row; every emitted row's balance equals
// opening + sum(debit-credit) over the prefix ending at that row.
func (s *ledgerService) Statement(ctx context.Context, customerID, filterType, startDate, endDate, voucherType string) (*domain.LedgerStatement, error) {
	if filterType == "" {
		filterType = s.defaultFilter
	}
	from, to, err := resolveWindow(filterType, startDate, endDate, s.now(), s.windowDays)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListEntries(ctx, customerID, from, to, voucherType, s.excludedTypes)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	// The opening aggregate ignores the voucher-type filter on purpose: the
	// balance carried into the window covers every posting before it.
	opening, err := s.ledgerRepo.OpeningBalance(ctx, customerID, from)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to compute opening balance: %w", err)
	}

	running := opening
	rows := make([]domain.LedgerRow, len(entries))
	for i, entry := range entries {
		running = running.Add(entry.Debit.Sub(entry.Credit))
		rows[i] = domain.LedgerRow{
			PostingDate: entry.PostingDate,
			VoucherType: entry.VoucherType,
			VoucherNo:   entry.VoucherNo,
			Debit:       entry.Debit,
			Credit:      entry.Credit,
			Balance:     running,
		}
	}

	s.LogInfo(ctx, "Ledger statement assembled",
		slog.String("customer_id", customerID),
		slog.String("from", from.Format(daterange.DateFormat)),
		slog.String("to", to.Format(daterange.DateFormat)),
		slog.Int("row_count", len(rows)))

	return &domain.LedgerStatement{
		FromDate:       from,
		ToDate:         to,
		OpeningBalance: opening,
		ClosingBalance: running,
		Rows:           rows,
	}, nil
}
