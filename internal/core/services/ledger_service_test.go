package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var ledgerTestNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvc
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(
		suite.mockRepo,
		"This Year",
		30,
		[]string{"Payment Ledger Entry"},
		services.WithLedgerClock(func() time.Time { return ledgerTestNow }),
	)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *LedgerServiceTestSuite) TestRunningBalanceAndClosing() {
	ctx := context.Background()
	from := day(2024, 6, 1)
	to := day(2024, 6, 15)
	opening := decimal.NewFromInt(1000)
	entries := []domain.LedgerEntry{
		{PostingDate: day(2024, 6, 2), VoucherType: "Sales Invoice", VoucherNo: "SINV-001", Debit: decimal.NewFromInt(500), Credit: decimal.Zero},
		{PostingDate: day(2024, 6, 5), VoucherType: "Payment Entry", VoucherNo: "PE-001", Debit: decimal.Zero, Credit: decimal.NewFromInt(700)},
		{PostingDate: day(2024, 6, 5), VoucherType: "Sales Invoice", VoucherNo: "SINV-002", Debit: decimal.NewFromInt(250), Credit: decimal.Zero},
	}
	suite.mockRepo.On("ListEntries", ctx, "CUST-001", from, to, "", []string{"Payment Ledger Entry"}).Return(entries, nil).Once()
	suite.mockRepo.On("OpeningBalance", ctx, "CUST-001", from).Return(opening, nil).Once()

	statement, err := suite.service.Statement(ctx, "CUST-001", "Custom", "2024-06-01", "2024-06-15", "")

	suite.Require().NoError(err)
	suite.True(statement.OpeningBalance.Equal(opening))
	// One row per matching entry; the opening balance is never a row.
	suite.Require().Len(statement.Rows, len(entries))
	suite.True(statement.Rows[0].Balance.Equal(decimal.NewFromInt(1500)))
	suite.True(statement.Rows[1].Balance.Equal(decimal.NewFromInt(800)))
	suite.True(statement.Rows[2].Balance.Equal(decimal.NewFromInt(1050)))
	// closing = opening + sum(debit - credit) over the window
	suite.True(statement.ClosingBalance.Equal(decimal.NewFromInt(1050)))
	suite.Equal(statement.Rows[len(statement.Rows)-1].Balance, statement.ClosingBalance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestEmptyWindowClosesAtOpening() {
	ctx := context.Background()
	from := day(2024, 6, 1)
	to := day(2024, 6, 15)
	opening := decimal.NewFromInt(-320)
	suite.mockRepo.On("ListEntries", ctx, "CUST-001", from, to, "", []string{"Payment Ledger Entry"}).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockRepo.On("OpeningBalance", ctx, "CUST-001", from).Return(opening, nil).Once()

	statement, err := suite.service.Statement(ctx, "CUST-001", "Custom", "2024-06-01", "2024-06-15", "")

	suite.Require().NoError(err)
	suite.Empty(statement.Rows)
	suite.True(statement.ClosingBalance.Equal(opening))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestVoucherTypeFilterDoesNotShiftOpening() {
	ctx := context.Background()
	from := day(2024, 6, 1)
	to := day(2024, 6, 15)
	// An explicit voucher type disables the excluded-types list for rows,
	// yet the opening query stays identical.
	suite.mockRepo.On("ListEntries", ctx, "CUST-001", from, to, "Payment Entry", []string{"Payment Ledger Entry"}).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockRepo.On("OpeningBalance", ctx, "CUST-001", from).Return(decimal.NewFromInt(42), nil).Once()

	statement, err := suite.service.Statement(ctx, "CUST-001", "Custom", "2024-06-01", "2024-06-15", "Payment Entry")

	suite.Require().NoError(err)
	suite.True(statement.OpeningBalance.Equal(decimal.NewFromInt(42)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDefaultFilterIsThisYear() {
	ctx := context.Background()
	from := day(2024, 1, 1)
	to := day(2024, 12, 31)
	suite.mockRepo.On("ListEntries", ctx, "CUST-001", from, to, "", []string{"Payment Ledger Entry"}).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockRepo.On("OpeningBalance", ctx, "CUST-001", from).Return(decimal.Zero, nil).Once()

	statement, err := suite.service.Statement(ctx, "CUST-001", "", "", "", "")

	suite.Require().NoError(err)
	suite.Equal(from, statement.FromDate)
	suite.Equal(to, statement.ToDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUnknownFilterFallsBackToTrailingWindow() {
	ctx := context.Background()
	from := day(2024, 5, 16)
	to := day(2024, 6, 15)
	suite.mockRepo.On("ListEntries", ctx, "CUST-001", from, to, "", mock.Anything).Return([]domain.LedgerEntry{}, nil).Once()
	suite.mockRepo.On("OpeningBalance", ctx, "CUST-001", from).Return(decimal.Zero, nil).Once()

	statement, err := suite.service.Statement(ctx, "CUST-001", "Bogus Filter", "", "", "")

	suite.Require().NoError(err)
	suite.Equal(from, statement.FromDate)
	suite.Equal(to, statement.ToDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestInvalidCustomDatesRejected() {
	ctx := context.Background()

	statement, err := suite.service.Statement(ctx, "CUST-001", "Custom", "15-06-2024", "2024-06-15", "")

	suite.Require().Error(err)
	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListEntries")
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
