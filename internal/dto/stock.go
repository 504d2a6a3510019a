package dto

import (
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockRowResponse is one item/warehouse row of the stock dashboard.
type StockRowResponse struct {
	ItemCode     string          `json:"itemCode"`
	ItemName     string          `json:"itemName"`
	Warehouse    string          `json:"warehouse"`
	ActualQty    decimal.Decimal `json:"actualQty"`
	StockUOM     string          `json:"stockUOM"`
	ItemGroup    string          `json:"itemGroup"`
	ReorderLevel decimal.Decimal `json:"reorderLevel"`
	Status       string          `json:"status"`
}

// ToStockRowResponses converts stock rows to the response shape.
func ToStockRowResponses(rows []domain.StockRow) []StockRowResponse {
	out := make([]StockRowResponse, len(rows))
	for i, row := range rows {
		out[i] = StockRowResponse{
			ItemCode:     row.ItemCode,
			ItemName:     row.ItemName,
			Warehouse:    row.Warehouse,
			ActualQty:    row.ActualQty,
			StockUOM:     row.StockUOM,
			ItemGroup:    row.ItemGroup,
			ReorderLevel: row.ReorderLevel,
			Status:       string(row.Status),
		}
	}
	return out
}
