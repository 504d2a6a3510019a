package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrderItem is one line of a sales order.
type SalesOrderItem struct {
	ItemCode string          `json:"itemCode"`
	ItemName string          `json:"itemName"`
	Qty      decimal.Decimal `json:"qty"`
	UOM      string          `json:"uom"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
	Image    string          `json:"image"`
}

// SalesOrder is an ERP sales order header with its lines.
type SalesOrder struct {
	Name            string           `json:"name"`
	CustomerID      string           `json:"customerID"`
	TransactionDate time.Time        `json:"transactionDate"`
	DeliveryDate    time.Time        `json:"deliveryDate"`
	DeliveryShift   string           `json:"deliveryShift"`
	Status          string           `json:"status"`
	DocStatus       DocStatus        `json:"docStatus"`
	GrandTotal      decimal.Decimal  `json:"grandTotal"`
	TotalTaxes      decimal.Decimal  `json:"totalTaxes"`
	TotalQty        decimal.Decimal  `json:"totalQty"`
	Items           []SalesOrderItem `json:"items"`
	AuditFields
}
