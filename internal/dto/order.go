package dto

import (
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils/daterange"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one cart line of an order placement.
type OrderItemRequest struct {
	ItemCode string          `json:"itemCode" binding:"required"`
	Qty      decimal.Decimal `json:"qty" binding:"required"`
	UOM      string          `json:"uom" binding:"required"`
	Rate     decimal.Decimal `json:"rate"`
}

// PlaceOrderRequest is the order placement payload. DeliveryDate and Shift are
// optional; the service fills in tomorrow / the configured default shift.
type PlaceOrderRequest struct {
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	DeliveryDate string             `json:"deliveryDate"`
	Shift        string             `json:"shift"`
}

// PlaceOrderResponse acknowledges a successful placement.
type PlaceOrderResponse struct {
	Status    string `json:"status"`
	OrderName string `json:"orderName"`
}

// OrderSummaryResponse is one row of the order list.
type OrderSummaryResponse struct {
	Name            string          `json:"name"`
	TransactionDate string          `json:"transactionDate"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
	Status          string          `json:"status"`
	DeliveryDate    string          `json:"deliveryDate"`
	DeliveryShift   string          `json:"deliveryShift"`
	TotalQty        decimal.Decimal `json:"totalQty"`
}

// OrderItemResponse is one line of an order's detail view.
type OrderItemResponse struct {
	ItemCode string          `json:"itemCode"`
	ItemName string          `json:"itemName"`
	Qty      decimal.Decimal `json:"qty"`
	UOM      string          `json:"uom"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
	Image    string          `json:"image"`
}

// OrderDetailsResponse is an order header with its lines.
type OrderDetailsResponse struct {
	Name            string              `json:"name"`
	TransactionDate string              `json:"transactionDate"`
	Status          string              `json:"status"`
	GrandTotal      decimal.Decimal     `json:"grandTotal"`
	Taxes           decimal.Decimal     `json:"taxes"`
	DeliveryDate    string              `json:"deliveryDate"`
	DeliveryShift   string              `json:"deliveryShift"`
	Items           []OrderItemResponse `json:"items"`
}

// ToOrderSummaryResponses converts listed orders to response rows.
func ToOrderSummaryResponses(orders []domain.SalesOrder) []OrderSummaryResponse {
	out := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		out[i] = OrderSummaryResponse{
			Name:            o.Name,
			TransactionDate: o.TransactionDate.Format(daterange.DateFormat),
			GrandTotal:      o.GrandTotal,
			Status:          o.Status,
			DeliveryDate:    o.DeliveryDate.Format(daterange.DateFormat),
			DeliveryShift:   o.DeliveryShift,
			TotalQty:        o.TotalQty,
		}
	}
	return out
}

// ToOrderDetailsResponse converts a full order to its detail view.
func ToOrderDetailsResponse(order *domain.SalesOrder) OrderDetailsResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ItemCode: item.ItemCode,
			ItemName: item.ItemName,
			Qty:      item.Qty,
			UOM:      item.UOM,
			Rate:     item.Rate,
			Amount:   item.Amount,
			Image:    item.Image,
		}
	}
	return OrderDetailsResponse{
		Name:            order.Name,
		TransactionDate: order.TransactionDate.Format(daterange.DateFormat),
		Status:          order.Status,
		GrandTotal:      order.GrandTotal,
		Taxes:           order.TotalTaxes,
		DeliveryDate:    order.DeliveryDate.Format(daterange.DateFormat),
		DeliveryShift:   order.DeliveryShift,
		Items:           items,
	}
}
