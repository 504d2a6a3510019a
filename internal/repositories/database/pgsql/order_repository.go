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

type orderRepository struct {
	BaseRepository
}

// newOrderRepository creates a repository for sales order records.
func newOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepository {
	return &orderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepository = (*orderRepository)(nil)

// FindExistingOrderName looks for a non-cancelled order on the exact
// (customer, delivery date, shift) tuple. Drafts count as existing.
func (r *orderRepository) FindExistingOrderName(ctx context.Context, customerID string, deliveryDate time.Time, shift string) (string, error) {
	query := `
		SELECT name
		FROM sales_orders
		WHERE customer_id = $1
			AND delivery_date = $2
			AND delivery_shift = $3
			AND docstatus < 2
		LIMIT 1
	`
	var name string
	err := r.Pool.QueryRow(ctx, query, customerID, deliveryDate, shift).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error querying existing order for customer %s: %w", customerID, err)
	}
	return name, nil
}

func (r *orderRepository) SaveOrder(ctx context.Context, order domain.SalesOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	headerQuery := `
		INSERT INTO sales_orders (
			name, customer_id, transaction_date, delivery_date, delivery_shift,
			status, docstatus, grand_total, total_taxes, total_qty,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = tx.Exec(ctx, headerQuery,
		order.Name,
		order.CustomerID,
		order.TransactionDate,
		order.DeliveryDate,
		order.DeliveryShift,
		order.Status,
		int(order.DocStatus),
		order.GrandTotal,
		order.TotalTaxes,
		order.TotalQty,
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting sales order %s: %w", order.Name, err)
	}

	itemQuery := `
		INSERT INTO sales_order_items (order_name, idx, item_code, qty, uom, rate, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	batch := &pgx.Batch{}
	for i, item := range order.Items {
		batch.Queue(itemQuery, order.Name, i+1, item.ItemCode, item.Qty, item.UOM, item.Rate, item.Amount)
	}
	results := tx.SendBatch(ctx, batch)
	for range order.Items {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("error inserting items of sales order %s: %w", order.Name, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("error closing item batch of sales order %s: %w", order.Name, err)
	}

	return r.Commit(ctx, tx)
}

func (r *orderRepository) ListOrders(ctx context.Context, customerID string, from, to time.Time) ([]domain.SalesOrder, error) {
	query := `
		SELECT name, transaction_date, delivery_date, delivery_shift,
			status, docstatus, grand_total, total_qty
		FROM sales_orders
		WHERE customer_id = $1
			AND transaction_date >= $2
			AND transaction_date <= $3
			AND docstatus < 2
		ORDER BY transaction_date DESC, name DESC
	`
	rows, err := r.Pool.Query(ctx, query, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying orders of customer %s: %w", customerID, err)
	}
	defer rows.Close()

	orders := []domain.SalesOrder{}
	for rows.Next() {
		var o domain.SalesOrder
		o.CustomerID = customerID
		if err := rows.Scan(
			&o.Name,
			&o.TransactionDate,
			&o.DeliveryDate,
			&o.DeliveryShift,
			&o.Status,
			&o.DocStatus,
			&o.GrandTotal,
			&o.TotalQty,
		); err != nil {
			return nil, fmt.Errorf("error scanning order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) FindOrderByName(ctx context.Context, name string) (*domain.SalesOrder, error) {
	headerQuery := `
		SELECT name, customer_id, transaction_date, delivery_date, delivery_shift,
			status, docstatus, grand_total, total_taxes, total_qty
		FROM sales_orders
		WHERE name = $1
	`
	var o domain.SalesOrder
	err := r.Pool.QueryRow(ctx, headerQuery, name).Scan(
		&o.Name,
		&o.CustomerID,
		&o.TransactionDate,
		&o.DeliveryDate,
		&o.DeliveryShift,
		&o.Status,
		&o.DocStatus,
		&o.GrandTotal,
		&o.TotalTaxes,
		&o.TotalQty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying order %s: %w", name, err)
	}

	itemsQuery := `
		SELECT oi.item_code, COALESCE(i.item_name, oi.item_code),
			oi.qty, oi.uom, oi.rate, oi.amount, COALESCE(i.image, '')
		FROM sales_order_items oi
		LEFT JOIN items i ON i.item_code = oi.item_code
		WHERE oi.order_name = $1
		ORDER BY oi.idx ASC
	`
	rows, err := r.Pool.Query(ctx, itemsQuery, name)
	if err != nil {
		return nil, fmt.Errorf("error querying items of order %s: %w", name, err)
	}
	defer rows.Close()

	o.Items = []domain.SalesOrderItem{}
	for rows.Next() {
		var item domain.SalesOrderItem
		if err := rows.Scan(&item.ItemCode, &item.ItemName, &item.Qty, &item.UOM, &item.Rate, &item.Amount, &item.Image); err != nil {
			return nil, fmt.Errorf("error scanning order item row: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order item rows: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) CountOpenOrders(ctx context.Context, customerID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM sales_orders
		WHERE customer_id = $1
			AND docstatus = 1
			AND status NOT IN ('Completed', 'Closed')
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, customerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting open orders of customer %s: %w", customerID, err)
	}
	return count, nil
}
