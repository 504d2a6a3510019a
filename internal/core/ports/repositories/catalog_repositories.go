package repositories

import (
	"context"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
)

// CatalogRepository provides read access to item master data.
type CatalogRepository interface {
	// ListGroupWithDescendants returns the named item group plus every
	// descendant group, or an empty slice when the root does not exist.
	ListGroupWithDescendants(ctx context.Context, rootGroup string) ([]string, error)

	// ListSalesItems returns enabled sales items in the given groups, ordered
	// by item name ascending, each carrying the rate from the given price
	// list (zero when no rate is defined for the item/price-list pair). The
	// returned items have no UOM options attached yet.
	ListSalesItems(ctx context.Context, groups []string, priceList string) ([]domain.CatalogItem, error)

	// ListUOMConversions returns the UOM conversion rows for all given items
	// in a single read, to be partitioned by item code in memory.
	ListUOMConversions(ctx context.Context, itemCodes []string) ([]domain.UOMConversion, error)
}
