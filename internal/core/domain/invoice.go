package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesInvoiceItem is one line of a sales invoice.
type SalesInvoiceItem struct {
	ItemCode string          `json:"itemCode"`
	ItemName string          `json:"itemName"`
	Qty      decimal.Decimal `json:"qty"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// SalesInvoice is an ERP sales invoice header with its lines.
type SalesInvoice struct {
	Name              string             `json:"name"`
	CustomerID        string             `json:"customerID"`
	PostingDate       time.Time          `json:"postingDate"`
	Status            string             `json:"status"`
	DocStatus         DocStatus          `json:"docStatus"`
	GrandTotal        decimal.Decimal    `json:"grandTotal"`
	OutstandingAmount decimal.Decimal    `json:"outstandingAmount"`
	Items             []SalesInvoiceItem `json:"items"`
}
