package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils"
)

// customerResolver maps the authenticated portal user to a customer. The
// portal link table is the primary lookup; a contact carrying the user's
// email is the fallback.
type customerResolver struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerResolver creates a new customer resolver.
func NewCustomerResolver(customerRepo portsrepo.CustomerRepository) portssvc.CustomerResolverSvc {
	return &customerResolver{customerRepo: customerRepo}
}

var _ portssvc.CustomerResolverSvc = (*customerResolver)(nil)

// ResolveCustomer returns the customer linked to the portal user. Missing
// session or missing linkage are hard precondition failures surfaced as
// sentinels, not envelopes.
func (s *customerResolver) ResolveCustomer(ctx context.Context, portalUser string) (string, error) {
	if portalUser == "" {
		return "", apperrors.ErrUnauthenticated
	}

	customerID, err := utils.FirstOf(ctx,
		func(ctx context.Context) (string, error) {
			return s.customerRepo.FindCustomerIDByPortalUser(ctx, portalUser)
		},
		func(ctx context.Context) (string, error) {
			return s.customerRepo.FindCustomerIDByContactEmail(ctx, portalUser)
		},
	)
	if err != nil {
		s.LogError(ctx, err, "Customer resolution lookup failed", slog.String("portal_user", portalUser))
		return "", fmt.Errorf("failed to resolve customer for %s: %w", portalUser, err)
	}
	if customerID == "" {
		s.LogWarn(ctx, "No customer linked to portal user", slog.String("portal_user", portalUser))
		return "", fmt.Errorf("%w: %s", apperrors.ErrNotLinked, portalUser)
	}

	return customerID, nil
}
