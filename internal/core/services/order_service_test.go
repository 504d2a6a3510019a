package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var orderTestNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOrderRepository
	service  portssvc.OrderSvc
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderRepository)
	suite.service = services.NewOrderService(
		suite.mockRepo,
		7,
		"Morning",
		services.WithOrderClock(func() time.Time { return orderTestNow }),
	)
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_Success() {
	ctx := context.Background()
	req := dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{
			{ItemCode: "MILK-1L", Qty: decimal.NewFromInt(10), UOM: "Nos", Rate: decimal.NewFromInt(60)},
			{ItemCode: "CURD-500G", Qty: decimal.NewFromInt(5), UOM: "Nos", Rate: decimal.NewFromInt(30)},
		},
		DeliveryDate: "2024-06-20",
		Shift:        "Evening",
	}
	deliveryDate := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("FindExistingOrderName", ctx, "CUST-001", deliveryDate, "Evening").Return("", nil).Once()

	var saved domain.SalesOrder
	suite.mockRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.SalesOrder")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.SalesOrder)
	}).Return(nil).Once()

	orderName, err := suite.service.PlaceOrder(ctx, "CUST-001", req)

	suite.Require().NoError(err)
	suite.NotEmpty(orderName)
	suite.Equal(orderName, saved.Name)
	suite.Equal("CUST-001", saved.CustomerID)
	suite.Equal(domain.DocStatusDraft, saved.DocStatus)
	suite.Equal("Evening", saved.DeliveryShift)
	suite.True(saved.GrandTotal.Equal(decimal.NewFromInt(750)))
	suite.True(saved.TotalQty.Equal(decimal.NewFromInt(15)))
	suite.Require().Len(saved.Items, 2)
	suite.True(saved.Items[0].Amount.Equal(decimal.NewFromInt(600)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_DefaultsDeliveryDateAndShift() {
	ctx := context.Background()
	req := dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{
			{ItemCode: "MILK-1L", Qty: decimal.NewFromInt(1), UOM: "Nos", Rate: decimal.NewFromInt(60)},
		},
	}
	tomorrow := orderTestNow.AddDate(0, 0, 1)
	suite.mockRepo.On("FindExistingOrderName", ctx, "CUST-001", tomorrow, "Morning").Return("", nil).Once()
	suite.mockRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.SalesOrder")).Return(nil).Once()

	orderName, err := suite.service.PlaceOrder(ctx, "CUST-001", req)

	suite.Require().NoError(err)
	suite.NotEmpty(orderName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_DuplicateSlotBlocksWithoutWrite() {
	ctx := context.Background()
	req := dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{
			{ItemCode: "MILK-1L", Qty: decimal.NewFromInt(1), UOM: "Nos"},
		},
		DeliveryDate: "2024-06-20",
		Shift:        "Morning",
	}
	deliveryDate := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("FindExistingOrderName", ctx, "CUST-001", deliveryDate, "Morning").Return("SO-EXISTING", nil).Once()

	orderName, err := suite.service.PlaceOrder(ctx, "CUST-001", req)

	suite.Require().Error(err)
	suite.Empty(orderName)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	// The error names the blocking order.
	suite.Contains(err.Error(), "SO-EXISTING")
	// Nothing may be written.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOrder")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_EmptyCartRejected() {
	ctx := context.Background()

	orderName, err := suite.service.PlaceOrder(ctx, "CUST-001", dto.PlaceOrderRequest{})

	suite.Require().Error(err)
	suite.Empty(orderName)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExistingOrderName")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOrder")
}

func (suite *OrderServiceTestSuite) TestPlaceOrder_BadDeliveryDate() {
	ctx := context.Background()
	req := dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{
			{ItemCode: "MILK-1L", Qty: decimal.NewFromInt(1), UOM: "Nos"},
		},
		DeliveryDate: "20/06/2024",
	}

	_, err := suite.service.PlaceOrder(ctx, "CUST-001", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestListOrders_DefaultTrailingWindow() {
	ctx := context.Background()
	from := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	expected := []domain.SalesOrder{{Name: "SO-001"}}
	suite.mockRepo.On("ListOrders", ctx, "CUST-001", from, to).Return(expected, nil).Once()

	orders, err := suite.service.ListOrders(ctx, "CUST-001", "", "", "")

	suite.Require().NoError(err)
	suite.Equal(expected, orders)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrderDetails_OwnershipEnforced() {
	ctx := context.Background()
	order := &domain.SalesOrder{Name: "SO-001", CustomerID: "CUST-OTHER"}
	suite.mockRepo.On("FindOrderByName", ctx, "SO-001").Return(order, nil).Once()

	result, err := suite.service.GetOrderDetails(ctx, "CUST-001", "SO-001")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrderDetails_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindOrderByName", ctx, "SO-GHOST").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.GetOrderDetails(ctx, "CUST-001", "SO-GHOST")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
