package domain

import "github.com/shopspring/decimal"

// StockStatus filters the stock dashboard by reorder-level health.
type StockStatus string

const (
	StockStatusAll      StockStatus = "All"
	StockStatusCritical StockStatus = "Critical"
	StockStatusHealthy  StockStatus = "Healthy"
)

// StockRow is one item/warehouse aggregate on the stock dashboard. Status is
// derived from quantity against the reorder level.
type StockRow struct {
	ItemCode     string          `json:"itemCode"`
	ItemName     string          `json:"itemName"`
	Warehouse    string          `json:"warehouse"`
	ActualQty    decimal.Decimal `json:"actualQty"`
	StockUOM     string          `json:"stockUOM"`
	ItemGroup    string          `json:"itemGroup"`
	ReorderLevel decimal.Decimal `json:"reorderLevel"`
	Status       StockStatus     `json:"status"`
}

// StockFilter narrows the stock dashboard query. ItemGroups is the expanded
// subtree of ItemGroup; the repository only consults ItemGroups.
type StockFilter struct {
	Warehouse  string
	ItemCode   string
	ItemGroup  string
	ItemGroups []string
	Status     StockStatus
	SortDesc   bool
}
