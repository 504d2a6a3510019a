package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var profileTestNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type ProfileServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockInvoiceRepo  *MockInvoiceRepository
	mockOrderRepo    *MockOrderRepository
	mockResolver     *MockCustomerResolver
	service          portssvc.ProfileSvc
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockResolver = new(MockCustomerResolver)
	suite.service = services.NewProfileService(
		suite.mockCustomerRepo,
		suite.mockInvoiceRepo,
		suite.mockOrderRepo,
		suite.mockResolver,
		services.WithProfileClock(func() time.Time { return profileTestNow }),
	)
}

func (suite *ProfileServiceTestSuite) TestGetProfile_WithLinkedCustomer() {
	ctx := context.Background()
	user := &domain.PortalUser{Email: "user@dairy.example", FullName: "A User"}
	customer := &domain.Customer{CustomerID: "CUST-001", CustomerName: "Dairy Shop"}
	suite.mockCustomerRepo.On("FindPortalUserByEmail", ctx, "user@dairy.example").Return(user, nil).Once()
	suite.mockResolver.On("ResolveCustomer", ctx, "user@dairy.example").Return("CUST-001", nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "CUST-001").Return(customer, nil).Once()

	gotUser, gotCustomer, err := suite.service.GetProfile(ctx, "user@dairy.example")

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.Equal(customer, gotCustomer)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestGetProfile_UnlinkedUserStillGetsProfile() {
	ctx := context.Background()
	user := &domain.PortalUser{Email: "orphan@dairy.example", FullName: "No Customer"}
	suite.mockCustomerRepo.On("FindPortalUserByEmail", ctx, "orphan@dairy.example").Return(user, nil).Once()
	suite.mockResolver.On("ResolveCustomer", ctx, "orphan@dairy.example").
		Return("", fmt.Errorf("%w: orphan@dairy.example", apperrors.ErrNotLinked)).Once()

	gotUser, gotCustomer, err := suite.service.GetProfile(ctx, "orphan@dairy.example")

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.Nil(gotCustomer)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByID")
}

func (suite *ProfileServiceTestSuite) TestGetDashboard_AggregatesYearToDate() {
	ctx := context.Background()
	user := &domain.PortalUser{Email: "user@dairy.example", FullName: "A User"}
	yearStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockResolver.On("ResolveCustomer", ctx, "user@dairy.example").Return("CUST-001", nil).Once()
	suite.mockCustomerRepo.On("FindPortalUserByEmail", ctx, "user@dairy.example").Return(user, nil).Once()
	suite.mockInvoiceRepo.On("SumBillingSince", ctx, "CUST-001", yearStart).Return(decimal.NewFromInt(125000), nil).Once()
	suite.mockInvoiceRepo.On("SumOutstanding", ctx, "CUST-001").Return(decimal.NewFromInt(8300), nil).Once()
	suite.mockOrderRepo.On("CountOpenOrders", ctx, "CUST-001").Return(2, nil).Once()

	userName, customerID, stats, err := suite.service.GetDashboard(ctx, "user@dairy.example")

	suite.Require().NoError(err)
	suite.Equal("A User", userName)
	suite.Equal("CUST-001", customerID)
	suite.True(stats.BillingThisYear.Equal(decimal.NewFromInt(125000)))
	suite.True(stats.TotalUnpaid.Equal(decimal.NewFromInt(8300)))
	suite.Equal(2, stats.OpenOrders)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestGetDashboard_RequiresLinkedCustomer() {
	ctx := context.Background()
	suite.mockResolver.On("ResolveCustomer", ctx, "orphan@dairy.example").
		Return("", fmt.Errorf("%w: orphan@dairy.example", apperrors.ErrNotLinked)).Once()

	userName, customerID, stats, err := suite.service.GetDashboard(ctx, "orphan@dairy.example")

	suite.Require().Error(err)
	suite.Empty(userName)
	suite.Empty(customerID)
	suite.Nil(stats)
	suite.ErrorIs(err, apperrors.ErrNotLinked)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SumBillingSince")
}

func TestProfileService(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
