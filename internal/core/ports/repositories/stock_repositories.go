package repositories

import (
	"context"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
)

// StockRepository provides read access to warehouse stock levels.
type StockRepository interface {
	// ListStock returns per item/warehouse quantities joined with reorder
	// levels, filtered and sorted per the given filter.
	ListStock(ctx context.Context, filter domain.StockFilter) ([]domain.StockRow, error)
}
