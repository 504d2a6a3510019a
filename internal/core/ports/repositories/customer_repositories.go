package repositories

import (
	"context"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
)

// CustomerRepository provides read access to customer and portal-user records.
type CustomerRepository interface {
	// FindCustomerByID returns the customer or apperrors.ErrNotFound.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindPortalUserByEmail returns the portal login record or apperrors.ErrNotFound.
	FindPortalUserByEmail(ctx context.Context, email string) (*domain.PortalUser, error)

	// FindCustomerIDByPortalUser returns the customer linked to the portal
	// user via the portal link table, or "" when none is linked.
	FindCustomerIDByPortalUser(ctx context.Context, email string) (string, error)

	// FindCustomerIDByContactEmail returns the customer reachable through a
	// contact with the given email, or "" when none matches. This is the
	// fallback lookup when the portal link table has no row.
	FindCustomerIDByContactEmail(ctx context.Context, email string) (string, error)

	// FindGroupDefaultPriceList returns the customer group's default price
	// list, or "" when the group has none.
	FindGroupDefaultPriceList(ctx context.Context, groupName string) (string, error)

	// FindSellingSettingsPriceList returns the system-wide default selling
	// price list, or "" when unset.
	FindSellingSettingsPriceList(ctx context.Context) (string, error)
}
