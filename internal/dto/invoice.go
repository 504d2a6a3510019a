package dto

import (
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils/daterange"
	"github.com/shopspring/decimal"
)

// InvoiceSummaryResponse is one row of the invoice list.
type InvoiceSummaryResponse struct {
	Name        string          `json:"name"`
	PostingDate string          `json:"postingDate"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Status      string          `json:"status"`
}

// InvoiceItemResponse is one line of an invoice's detail view.
type InvoiceItemResponse struct {
	ItemCode string          `json:"itemCode"`
	ItemName string          `json:"itemName"`
	Qty      decimal.Decimal `json:"qty"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// InvoiceDetailsResponse is an invoice header with its lines.
type InvoiceDetailsResponse struct {
	Name        string                `json:"name"`
	PostingDate string                `json:"postingDate"`
	Status      string                `json:"status"`
	GrandTotal  decimal.Decimal       `json:"grandTotal"`
	Outstanding decimal.Decimal       `json:"outstanding"`
	Items       []InvoiceItemResponse `json:"items"`
}

// ToInvoiceSummaryResponses converts listed invoices to response rows.
func ToInvoiceSummaryResponses(invoices []domain.SalesInvoice) []InvoiceSummaryResponse {
	out := make([]InvoiceSummaryResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = InvoiceSummaryResponse{
			Name:        inv.Name,
			PostingDate: inv.PostingDate.Format(daterange.DateFormat),
			GrandTotal:  inv.GrandTotal,
			Outstanding: inv.OutstandingAmount,
			Status:      inv.Status,
		}
	}
	return out
}

// ToInvoiceDetailsResponse converts a full invoice to its detail view.
func ToInvoiceDetailsResponse(invoice *domain.SalesInvoice) InvoiceDetailsResponse {
	items := make([]InvoiceItemResponse, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = InvoiceItemResponse{
			ItemCode: item.ItemCode,
			ItemName: item.ItemName,
			Qty:      item.Qty,
			Rate:     item.Rate,
			Amount:   item.Amount,
		}
	}
	return InvoiceDetailsResponse{
		Name:        invoice.Name,
		PostingDate: invoice.PostingDate.Format(daterange.DateFormat),
		Status:      invoice.Status,
		GrandTotal:  invoice.GrandTotal,
		Outstanding: invoice.OutstandingAmount,
		Items:       items,
	}
}
