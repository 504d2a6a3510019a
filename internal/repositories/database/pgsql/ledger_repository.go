package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ledgerRepository struct {
	BaseRepository
}

// newLedgerRepository creates a repository for general-ledger reads.
func newLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &ledgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*ledgerRepository)(nil)

// ListEntries returns the customer's entries in [from, to] ordered by posting
// date then insertion order. The id tie-break keeps same-day entries stable.
func (r *ledgerRepository) ListEntries(ctx context.Context, customerID string, from, to time.Time, voucherType string, excludedTypes []string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT posting_date, voucher_type, voucher_no, debit, credit, COALESCE(remarks, '')
		FROM gl_entries
		WHERE party_type = 'Customer'
			AND party = $1
			AND posting_date >= $2
			AND posting_date <= $3
			AND is_cancelled = FALSE
	`
	args := []any{customerID, from, to}
	if voucherType != "" {
		query += fmt.Sprintf(" AND voucher_type = $%d", len(args)+1)
		args = append(args, voucherType)
	} else if len(excludedTypes) > 0 {
		query += fmt.Sprintf(" AND NOT (voucher_type = ANY($%d))", len(args)+1)
		args = append(args, excludedTypes)
	}
	query += " ORDER BY posting_date ASC, creation ASC, id ASC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger entries of customer %s: %w", customerID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.PostingDate, &e.VoucherType, &e.VoucherNo, &e.Debit, &e.Credit, &e.Remarks); err != nil {
			return nil, fmt.Errorf("error scanning ledger entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}

// OpeningBalance aggregates every non-cancelled entry before the cutoff.
// No voucher-type filter applies here; the opening figure must not shift
// when the caller narrows the statement to one voucher type.
func (r *ledgerRepository) OpeningBalance(ctx context.Context, customerID string, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(debit - credit), 0)
		FROM gl_entries
		WHERE party_type = 'Customer'
			AND party = $1
			AND posting_date < $2
			AND is_cancelled = FALSE
	`
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, customerID, before).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("error querying opening balance of customer %s: %w", customerID, err)
	}
	return balance, nil
}
