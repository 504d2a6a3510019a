package domain

import "github.com/shopspring/decimal"

// UOMOption is a sellable unit of measure with its conversion factor to the
// item's base stock unit.
type UOMOption struct {
	UOM              string          `json:"uom"`
	ConversionFactor decimal.Decimal `json:"conversionFactor"`
}

// UOMConversion is one row of the ERP's per-item UOM conversion child table.
type UOMConversion struct {
	ItemCode         string          `json:"itemCode"`
	UOM              string          `json:"uom"`
	ConversionFactor decimal.Decimal `json:"conversionFactor"`
}

// CatalogItem is a sellable item with its resolved price-list rate and the
// units it may be ordered in.
type CatalogItem struct {
	ItemCode  string          `json:"itemCode"`
	ItemName  string          `json:"itemName"`
	Image     string          `json:"image"`
	ItemGroup string          `json:"itemGroup"`
	StockUOM  string          `json:"stockUOM"`
	SalesUOM  string          `json:"salesUOM"`
	BaseRate  decimal.Decimal `json:"baseRate"`
	UOMs      []UOMOption     `json:"uoms"`
}
