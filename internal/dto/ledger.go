package dto

import (
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils/daterange"
	"github.com/shopspring/decimal"
)

// LedgerRowResponse is one ledger line carrying its running balance.
type LedgerRowResponse struct {
	Date        string          `json:"date"`
	VoucherType string          `json:"voucherType"`
	VoucherNo   string          `json:"voucherNo"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerStatementResponse is the ledger report for one window.
type LedgerStatementResponse struct {
	FromDate       string              `json:"fromDate"`
	ToDate         string              `json:"toDate"`
	OpeningBalance decimal.Decimal     `json:"openingBalance"`
	ClosingBalance decimal.Decimal     `json:"closingBalance"`
	Rows           []LedgerRowResponse `json:"rows"`
}

// ToLedgerStatementResponse converts a domain statement to the response shape.
func ToLedgerStatementResponse(statement *domain.LedgerStatement) LedgerStatementResponse {
	rows := make([]LedgerRowResponse, len(statement.Rows))
	for i, row := range statement.Rows {
		rows[i] = LedgerRowResponse{
			Date:        row.PostingDate.Format(daterange.DateFormat),
			VoucherType: row.VoucherType,
			VoucherNo:   row.VoucherNo,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
	}
	return LedgerStatementResponse{
		FromDate:       statement.FromDate.Format(daterange.DateFormat),
		ToDate:         statement.ToDate.Format(daterange.DateFormat),
		OpeningBalance: statement.OpeningBalance,
		ClosingBalance: statement.ClosingBalance,
		Rows:           rows,
	}
}
