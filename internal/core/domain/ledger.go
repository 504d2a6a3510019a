package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one general-ledger entry of a customer, as read from the
// ERP's record store. Entries are consumed in (posting date, creation)
// ascending order; that ordering is what makes the running balance stable.
type LedgerEntry struct {
	PostingDate time.Time       `json:"postingDate"`
	VoucherType string          `json:"voucherType"`
	VoucherNo   string          `json:"voucherNo"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Remarks     string          `json:"remarks"`
}

// LedgerRow is a ledger entry annotated with the running balance after it.
type LedgerRow struct {
	PostingDate time.Time       `json:"postingDate"`
	VoucherType string          `json:"voucherType"`
	VoucherNo   string          `json:"voucherNo"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerStatement is the assembled ledger report for one customer window.
type LedgerStatement struct {
	FromDate       time.Time       `json:"fromDate"`
	ToDate         time.Time       `json:"toDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Rows           []LedgerRow     `json:"rows"`
}

// DashboardStats summarises a customer's standing for the dashboard endpoint.
type DashboardStats struct {
	BillingThisYear decimal.Decimal `json:"billingThisYear"`
	TotalUnpaid     decimal.Decimal `json:"totalUnpaid"`
	OpenOrders      int             `json:"openOrders"`
}
