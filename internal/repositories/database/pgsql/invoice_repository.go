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
	"github.com/shopspring/decimal"
)

type invoiceRepository struct {
	BaseRepository
}

// newInvoiceRepository creates a repository for sales invoice records.
func newInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &invoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepository = (*invoiceRepository)(nil)

func (r *invoiceRepository) ListInvoices(ctx context.Context, customerID string, from, to time.Time) ([]domain.SalesInvoice, error) {
	query := `
		SELECT name, posting_date, status, docstatus, grand_total, outstanding_amount
		FROM sales_invoices
		WHERE customer_id = $1
			AND posting_date >= $2
			AND posting_date <= $3
			AND docstatus = 1
		ORDER BY posting_date DESC, name DESC
	`
	rows, err := r.Pool.Query(ctx, query, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices of customer %s: %w", customerID, err)
	}
	defer rows.Close()

	invoices := []domain.SalesInvoice{}
	for rows.Next() {
		var inv domain.SalesInvoice
		inv.CustomerID = customerID
		if err := rows.Scan(
			&inv.Name,
			&inv.PostingDate,
			&inv.Status,
			&inv.DocStatus,
			&inv.GrandTotal,
			&inv.OutstandingAmount,
		); err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepository) FindInvoiceByName(ctx context.Context, name string) (*domain.SalesInvoice, error) {
	headerQuery := `
		SELECT name, customer_id, posting_date, status, docstatus,
			grand_total, outstanding_amount
		FROM sales_invoices
		WHERE name = $1
	`
	var inv domain.SalesInvoice
	err := r.Pool.QueryRow(ctx, headerQuery, name).Scan(
		&inv.Name,
		&inv.CustomerID,
		&inv.PostingDate,
		&inv.Status,
		&inv.DocStatus,
		&inv.GrandTotal,
		&inv.OutstandingAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying invoice %s: %w", name, err)
	}

	itemsQuery := `
		SELECT ii.item_code, COALESCE(i.item_name, ii.item_code),
			ii.qty, ii.rate, ii.amount
		FROM sales_invoice_items ii
		LEFT JOIN items i ON i.item_code = ii.item_code
		WHERE ii.invoice_name = $1
		ORDER BY ii.idx ASC
	`
	rows, err := r.Pool.Query(ctx, itemsQuery, name)
	if err != nil {
		return nil, fmt.Errorf("error querying items of invoice %s: %w", name, err)
	}
	defer rows.Close()

	inv.Items = []domain.SalesInvoiceItem{}
	for rows.Next() {
		var item domain.SalesInvoiceItem
		if err := rows.Scan(&item.ItemCode, &item.ItemName, &item.Qty, &item.Rate, &item.Amount); err != nil {
			return nil, fmt.Errorf("error scanning invoice item row: %w", err)
		}
		inv.Items = append(inv.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice item rows: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepository) SumBillingSince(ctx context.Context, customerID string, since time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(grand_total), 0)
		FROM sales_invoices
		WHERE customer_id = $1
			AND posting_date >= $2
			AND docstatus = 1
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, customerID, since).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing billing of customer %s: %w", customerID, err)
	}
	return total, nil
}

func (r *invoiceRepository) SumOutstanding(ctx context.Context, customerID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(outstanding_amount), 0)
		FROM sales_invoices
		WHERE customer_id = $1
			AND docstatus = 1
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, customerID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing outstanding of customer %s: %w", customerID, err)
	}
	return total, nil
}
