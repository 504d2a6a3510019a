package pgsql

import (
	"context"
	"fmt"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type stockRepository struct {
	BaseRepository
}

// newStockRepository creates a repository for warehouse stock reads.
func newStockRepository(pool *pgxpool.Pool) portsrepo.StockRepository {
	return &stockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StockRepository = (*stockRepository)(nil)

// ListStock aggregates bin quantities per item and warehouse, joined with the
// warehouse reorder level. Critical means at or below reorder, Healthy above.
func (r *stockRepository) ListStock(ctx context.Context, filter domain.StockFilter) ([]domain.StockRow, error) {
	query := `
		SELECT
			b.item_code,
			i.item_name,
			b.warehouse,
			SUM(b.actual_qty) AS actual_qty,
			i.stock_uom,
			i.item_group,
			COALESCE(MAX(ir.warehouse_reorder_level), 0) AS reorder_level
		FROM bins b
		JOIN items i ON i.item_code = b.item_code
		LEFT JOIN item_reorders ir
			ON ir.item_code = b.item_code
			AND ir.warehouse = b.warehouse
		WHERE i.disabled = FALSE
		AND b.actual_qty <> 0
	`
	args := []any{}
	if filter.Warehouse != "" {
		args = append(args, filter.Warehouse)
		query += fmt.Sprintf(" AND b.warehouse = $%d", len(args))
	}
	if filter.ItemCode != "" {
		args = append(args, filter.ItemCode)
		query += fmt.Sprintf(" AND b.item_code = $%d", len(args))
	}
	if len(filter.ItemGroups) > 0 {
		args = append(args, filter.ItemGroups)
		query += fmt.Sprintf(" AND i.item_group = ANY($%d)", len(args))
	}
	query += " GROUP BY b.item_code, i.item_name, b.warehouse, i.stock_uom, i.item_group"

	switch filter.Status {
	case domain.StockStatusCritical:
		query += " HAVING SUM(b.actual_qty) <= COALESCE(MAX(ir.warehouse_reorder_level), 0)"
	case domain.StockStatusHealthy:
		query += " HAVING SUM(b.actual_qty) > COALESCE(MAX(ir.warehouse_reorder_level), 0)"
	}

	if filter.SortDesc {
		query += " ORDER BY actual_qty DESC, b.item_code ASC"
	} else {
		query += " ORDER BY actual_qty ASC, b.item_code ASC"
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying stock levels: %w", err)
	}
	defer rows.Close()

	stock := []domain.StockRow{}
	for rows.Next() {
		var s domain.StockRow
		if err := rows.Scan(
			&s.ItemCode,
			&s.ItemName,
			&s.Warehouse,
			&s.ActualQty,
			&s.StockUOM,
			&s.ItemGroup,
			&s.ReorderLevel,
		); err != nil {
			return nil, fmt.Errorf("error scanning stock row: %w", err)
		}
		stock = append(stock, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock rows: %w", err)
	}
	return stock, nil
}
