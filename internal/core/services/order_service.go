package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils/daterange"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderService manages sales orders on behalf of a customer.
type orderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepository
	windowDays   int
	defaultShift string
	now          func() time.Time
}

// OrderServiceOption configures the order service.
type OrderServiceOption func(*orderService)

// WithOrderClock overrides the clock, for tests.
func WithOrderClock(now func() time.Time) OrderServiceOption {
	return func(s *orderService) {
		s.now = now
	}
}

// NewOrderService creates a new order service. windowDays is the default
// trailing window of the order list; defaultShift is used when the placement
// payload names none.
func NewOrderService(orderRepo portsrepo.OrderRepository, windowDays int, defaultShift string, options ...OrderServiceOption) portssvc.OrderSvc {
	svc := &orderService{
		orderRepo:    orderRepo,
		windowDays:   windowDays,
		defaultShift: defaultShift,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderSvc = (*orderService)(nil)

// PlaceOrder creates a new sales order. A non-cancelled order already
// occupying the exact (customer, delivery date, shift) tuple blocks the
// placement; the returned error names it and nothing is written.
func (s *orderService) PlaceOrder(ctx context.Context, customerID string, req dto.PlaceOrderRequest) (string, error) {
	if len(req.Items) == 0 {
		return "", fmt.Errorf("%w: cannot place empty order", apperrors.ErrValidation)
	}

	now := s.now()
	deliveryDate := now.AddDate(0, 0, 1)
	if req.DeliveryDate != "" {
		parsed, err := time.Parse(daterange.DateFormat, req.DeliveryDate)
		if err != nil {
			return "", fmt.Errorf("%w: invalid delivery date %q", apperrors.ErrValidation, req.DeliveryDate)
		}
		deliveryDate = parsed
	}
	shift := req.Shift
	if shift == "" {
		shift = s.defaultShift
	}

	existing, err := s.orderRepo.FindExistingOrderName(ctx, customerID, deliveryDate, shift)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing order", slog.String("customer_id", customerID))
		return "", fmt.Errorf("failed to check for existing order: %w", err)
	}
	if existing != "" {
		s.LogWarn(ctx, "Order slot already taken",
			slog.String("customer_id", customerID),
			slog.String("existing_order", existing))
		return "", fmt.Errorf("%w: an order for %s (%s) already exists: %s",
			apperrors.ErrDuplicate, deliveryDate.Format(daterange.DateFormat), shift, existing)
	}

	order := domain.SalesOrder{
		Name:            newOrderName(),
		CustomerID:      customerID,
		TransactionDate: now,
		DeliveryDate:    deliveryDate,
		DeliveryShift:   shift,
		Status:          "Draft",
		DocStatus:       domain.DocStatusDraft,
		Items:           make([]domain.SalesOrderItem, len(req.Items)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     customerID,
			LastUpdatedAt: now,
			LastUpdatedBy: customerID,
		},
	}

	grandTotal := decimal.Zero
	totalQty := decimal.Zero
	for i, line := range req.Items {
		amount := line.Qty.Mul(line.Rate)
		order.Items[i] = domain.SalesOrderItem{
			ItemCode: line.ItemCode,
			Qty:      line.Qty,
			UOM:      line.UOM,
			Rate:     line.Rate,
			Amount:   amount,
		}
		grandTotal = grandTotal.Add(amount)
		totalQty = totalQty.Add(line.Qty)
	}
	order.GrandTotal = grandTotal
	order.TotalQty = totalQty

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.String("customer_id", customerID))
		return "", fmt.Errorf("failed to save order: %w", err)
	}

	s.LogInfo(ctx, "Order placed",
		slog.String("customer_id", customerID),
		slog.String("order_name", order.Name),
		slog.Int("line_count", len(order.Items)))
	return order.Name, nil
}

// ListOrders returns non-cancelled orders in the resolved window, newest first.
func (s *orderService) ListOrders(ctx context.Context, customerID, filterType, startDate, endDate string) ([]domain.SalesOrder, error) {
	from, to, err := resolveWindow(filterType, startDate, endDate, s.now(), s.windowDays)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListOrders(ctx, customerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrderDetails returns the full order after verifying it belongs to the
// calling customer.
func (s *orderService) GetOrderDetails(ctx context.Context, customerID, orderName string) (*domain.SalesOrder, error) {
	order, err := s.orderRepo.FindOrderByName(ctx, orderName)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		s.LogWarn(ctx, "Order ownership check failed",
			slog.String("customer_id", customerID),
			slog.String("order_name", orderName))
		return nil, apperrors.ErrForbidden
	}
	return order, nil
}

// newOrderName generates a sales order name in the ERP's SO- series.
func newOrderName() string {
	return "SO-" + strings.ToUpper(uuid.NewString()[:8])
}
