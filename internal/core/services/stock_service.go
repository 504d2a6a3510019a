package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
)

// stockService exposes the stock dashboard.
type stockService struct {
	BaseService
	stockRepo   portsrepo.StockRepository
	catalogRepo portsrepo.CatalogRepository
}

// NewStockService creates a new stock service. The catalog repository is used
// to expand an item-group filter into its subtree.
func NewStockService(stockRepo portsrepo.StockRepository, catalogRepo portsrepo.CatalogRepository) portssvc.StockSvc {
	return &stockService{stockRepo: stockRepo, catalogRepo: catalogRepo}
}

var _ portssvc.StockSvc = (*stockService)(nil)

// ListStock returns the stock rows matching the filter, each annotated with
// its reorder health. An unknown status degrades to All rather than failing.
func (s *stockService) ListStock(ctx context.Context, filter domain.StockFilter) ([]domain.StockRow, error) {
	switch filter.Status {
	case domain.StockStatusAll, domain.StockStatusCritical, domain.StockStatusHealthy:
	default:
		filter.Status = domain.StockStatusAll
	}

	if filter.ItemGroup != "" {
		groups, err := s.catalogRepo.ListGroupWithDescendants(ctx, filter.ItemGroup)
		if err != nil {
			s.LogError(ctx, err, "Failed to expand item group for stock filter", slog.String("group", filter.ItemGroup))
			return nil, fmt.Errorf("failed to expand item group %s: %w", filter.ItemGroup, err)
		}
		if len(groups) == 0 {
			return []domain.StockRow{}, nil
		}
		filter.ItemGroups = groups
	}

	rows, err := s.stockRepo.ListStock(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock", slog.String("warehouse", filter.Warehouse))
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}

	for i := range rows {
		if rows[i].ActualQty.LessThanOrEqual(rows[i].ReorderLevel) {
			rows[i].Status = domain.StockStatusCritical
		} else {
			rows[i].Status = domain.StockStatusHealthy
		}
	}
	return rows, nil
}
