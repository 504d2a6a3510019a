package dto

import (
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UOMOptionResponse is one orderable unit of an item.
type UOMOptionResponse struct {
	UOM              string          `json:"uom"`
	ConversionFactor decimal.Decimal `json:"conversionFactor"`
}

// CatalogItemResponse is one catalog entry with its resolved rate and units.
type CatalogItemResponse struct {
	ItemCode string              `json:"itemCode"`
	ItemName string              `json:"itemName"`
	Image    string              `json:"image"`
	ItemGroup string             `json:"itemGroup"`
	StockUOM string              `json:"stockUOM"`
	BaseRate decimal.Decimal     `json:"baseRate"`
	UOMs     []UOMOptionResponse `json:"uoms"`
}

// CatalogResponse is the full catalog listing for one customer.
type CatalogResponse struct {
	PriceList string                `json:"priceList"`
	Items     []CatalogItemResponse `json:"items"`
}

// ToCatalogResponse converts assembled catalog items to the response shape.
func ToCatalogResponse(items []domain.CatalogItem, priceList string) CatalogResponse {
	response := CatalogResponse{
		PriceList: priceList,
		Items:     make([]CatalogItemResponse, len(items)),
	}
	for i, item := range items {
		uoms := make([]UOMOptionResponse, len(item.UOMs))
		for j, u := range item.UOMs {
			uoms[j] = UOMOptionResponse{UOM: u.UOM, ConversionFactor: u.ConversionFactor}
		}
		response.Items[i] = CatalogItemResponse{
			ItemCode:  item.ItemCode,
			ItemName:  item.ItemName,
			Image:     item.Image,
			ItemGroup: item.ItemGroup,
			StockUOM:  item.StockUOM,
			BaseRate:  item.BaseRate,
			UOMs:      uoms,
		}
	}
	return response
}
