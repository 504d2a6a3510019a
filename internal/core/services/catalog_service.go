package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils"
	"github.com/shopspring/decimal"
)

// catalogService assembles the priced item catalog for a customer.
type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepository
	pricing     portssvc.PricingSvc
	rootGroups  []string
}

// NewCatalogService creates a new catalog service. rootGroups are the item
// group roots whose subtrees make up the catalog.
func NewCatalogService(catalogRepo portsrepo.CatalogRepository, pricing portssvc.PricingSvc, rootGroups []string) portssvc.CatalogSvc {
	return &catalogService{
		catalogRepo: catalogRepo,
		pricing:     pricing,
		rootGroups:  rootGroups,
	}
}

var _ portssvc.CatalogSvc = (*catalogService)(nil)

// ListItems returns the catalog priced with the customer's resolved price
// list, items ordered by name ascending.
func (s *catalogService) ListItems(ctx context.Context, customerID string) ([]domain.CatalogItem, string, error) {
	priceList, err := s.pricing.ResolvePriceList(ctx, customerID)
	if err != nil {
		return nil, "", err
	}

	groups, err := s.eligibleGroups(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(groups) == 0 {
		s.LogWarn(ctx, "No catalog item groups found", slog.Any("roots", s.rootGroups))
		return []domain.CatalogItem{}, priceList, nil
	}

	items, err := s.catalogRepo.ListSalesItems(ctx, groups, priceList)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales items", slog.String("price_list", priceList))
		return nil, "", fmt.Errorf("failed to list sales items: %w", err)
	}
	if len(items) == 0 {
		return []domain.CatalogItem{}, priceList, nil
	}

	// One batched read for the whole result set, partitioned in memory.
	// Per-item lookups here would be an N+1 regression.
	itemCodes := make([]string, len(items))
	for i, item := range items {
		itemCodes[i] = item.ItemCode
	}
	conversions, err := s.catalogRepo.ListUOMConversions(ctx, itemCodes)
	if err != nil {
		s.LogError(ctx, err, "Failed to load UOM conversions", slog.Int("item_count", len(itemCodes)))
		return nil, "", fmt.Errorf("failed to load UOM conversions: %w", err)
	}
	byItem := utils.GroupBy(conversions, func(c domain.UOMConversion) string { return c.ItemCode })

	for i := range items {
		items[i].UOMs = buildUOMOptions(&items[i], byItem[items[i].ItemCode])
	}

	s.LogInfo(ctx, "Catalog assembled",
		slog.String("customer_id", customerID),
		slog.String("price_list", priceList),
		slog.Int("item_count", len(items)))
	return items, priceList, nil
}

// eligibleGroups unions each root's subtree (root included); roots that do
// not exist contribute nothing. The result is deduplicated.
func (s *catalogService) eligibleGroups(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var groups []string
	for _, root := range s.rootGroups {
		subtree, err := s.catalogRepo.ListGroupWithDescendants(ctx, root)
		if err != nil {
			s.LogError(ctx, err, "Failed to expand item group", slog.String("root", root))
			return nil, fmt.Errorf("failed to expand item group %s: %w", root, err)
		}
		for _, g := range subtree {
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				groups = append(groups, g)
			}
		}
	}
	return groups, nil
}

// buildUOMOptions derives the orderable units for an item. The stock UOM is
// always present with factor 1 unless an explicit conversion overrides it.
// A declared sales UOM narrows the set to that single unit.
func buildUOMOptions(item *domain.CatalogItem, conversions []domain.UOMConversion) []domain.UOMOption {
	factors := make(map[string]decimal.Decimal, len(conversions)+1)
	order := make([]string, 0, len(conversions)+1)
	for _, c := range conversions {
		if _, ok := factors[c.UOM]; !ok {
			order = append(order, c.UOM)
		}
		factors[c.UOM] = c.ConversionFactor
	}
	if _, ok := factors[item.StockUOM]; !ok {
		factors[item.StockUOM] = decimal.NewFromInt(1)
		order = append(order, item.StockUOM)
	}

	if item.SalesUOM != "" {
		factor, ok := factors[item.SalesUOM]
		if !ok {
			factor = decimal.NewFromInt(1)
		}
		return []domain.UOMOption{{UOM: item.SalesUOM, ConversionFactor: factor}}
	}

	options := make([]domain.UOMOption, 0, len(order))
	for _, uom := range order {
		options = append(options, domain.UOMOption{UOM: uom, ConversionFactor: factors[uom]})
	}
	return options
}
