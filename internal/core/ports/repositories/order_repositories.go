package repositories

import (
	"context"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
)

// OrderRepository provides access to sales order records.
type OrderRepository interface {
	// FindExistingOrderName returns the name of a non-cancelled order for the
	// exact (customer, delivery date, shift) tuple, or "" when none exists.
	FindExistingOrderName(ctx context.Context, customerID string, deliveryDate time.Time, shift string) (string, error)

	// SaveOrder inserts the order header and its items in one transaction.
	SaveOrder(ctx context.Context, order domain.SalesOrder) error

	// ListOrders returns non-cancelled orders of the customer whose
	// transaction date falls in [from, to], newest first. Items are not loaded.
	ListOrders(ctx context.Context, customerID string, from, to time.Time) ([]domain.SalesOrder, error)

	// FindOrderByName returns the full order with items, or apperrors.ErrNotFound.
	FindOrderByName(ctx context.Context, name string) (*domain.SalesOrder, error)

	// CountOpenOrders returns the number of submitted, not yet closed orders
	// of the customer.
	CountOpenOrders(ctx context.Context, customerID string) (int, error)
}
