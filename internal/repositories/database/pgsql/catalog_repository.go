package pgsql

import (
	"context"
	"fmt"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type catalogRepository struct {
	BaseRepository
}

// newCatalogRepository creates a repository for item master data.
func newCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepository {
	return &catalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepository = (*catalogRepository)(nil)

// ListGroupWithDescendants expands the group tree below the given root,
// root included. A root that does not exist yields an empty slice.
func (r *catalogRepository) ListGroupWithDescendants(ctx context.Context, rootGroup string) ([]string, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT name FROM item_groups WHERE name = $1
			UNION ALL
			SELECT g.name
			FROM item_groups g
			JOIN subtree s ON g.parent_group = s.name
		)
		SELECT name FROM subtree
	`
	rows, err := r.Pool.Query(ctx, query, rootGroup)
	if err != nil {
		return nil, fmt.Errorf("error querying item group subtree of %s: %w", rootGroup, err)
	}
	defer rows.Close()

	groups := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning item group row: %w", err)
		}
		groups = append(groups, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item group rows: %w", err)
	}
	return groups, nil
}

// ListSalesItems returns enabled sales items in the given groups, ordered by
// item name, carrying the rate of the given price list (zero when undefined).
func (r *catalogRepository) ListSalesItems(ctx context.Context, groups []string, priceList string) ([]domain.CatalogItem, error) {
	query := `
		SELECT
			i.item_code,
			i.item_name,
			COALESCE(i.image, ''),
			i.item_group,
			i.stock_uom,
			COALESCE(i.sales_uom, ''),
			COALESCE(ip.rate, 0) AS base_rate
		FROM items i
		LEFT JOIN item_prices ip
			ON ip.item_code = i.item_code
			AND ip.price_list = $2
		WHERE i.item_group = ANY($1)
			AND i.disabled = FALSE
			AND i.is_sales_item = TRUE
		ORDER BY i.item_name ASC
	`
	rows, err := r.Pool.Query(ctx, query, groups, priceList)
	if err != nil {
		return nil, fmt.Errorf("error querying sales items: %w", err)
	}
	defer rows.Close()

	items := []domain.CatalogItem{}
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(
			&item.ItemCode,
			&item.ItemName,
			&item.Image,
			&item.ItemGroup,
			&item.StockUOM,
			&item.SalesUOM,
			&item.BaseRate,
		); err != nil {
			return nil, fmt.Errorf("error scanning sales item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales item rows: %w", err)
	}
	return items, nil
}

// ListUOMConversions fetches conversion rows for all given items in one read.
func (r *catalogRepository) ListUOMConversions(ctx context.Context, itemCodes []string) ([]domain.UOMConversion, error) {
	query := `
		SELECT item_code, uom, conversion_factor
		FROM uom_conversions
		WHERE item_code = ANY($1)
	`
	rows, err := r.Pool.Query(ctx, query, itemCodes)
	if err != nil {
		return nil, fmt.Errorf("error querying UOM conversions: %w", err)
	}
	defer rows.Close()

	conversions := []domain.UOMConversion{}
	for rows.Next() {
		var c domain.UOMConversion
		if err := rows.Scan(&c.ItemCode, &c.UOM, &c.ConversionFactor); err != nil {
			return nil, fmt.Errorf("error scanning UOM conversion row: %w", err)
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating UOM conversion rows: %w", err)
	}
	return conversions, nil
}
