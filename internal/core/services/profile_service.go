package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
)

// profileService exposes the portal user's profile and dashboard aggregates.
type profileService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
	invoiceRepo  portsrepo.InvoiceRepository
	orderRepo    portsrepo.OrderRepository
	resolver     portssvc.CustomerResolverSvc
	now          func() time.Time
}

// ProfileServiceOption configures the profile service.
type ProfileServiceOption func(*profileService)

// WithProfileClock overrides the clock, for tests.
func WithProfileClock(now func() time.Time) ProfileServiceOption {
	return func(s *profileService) {
		s.now = now
	}
}

// NewProfileService creates a new profile service.
func NewProfileService(
	customerRepo portsrepo.CustomerRepository,
	invoiceRepo portsrepo.InvoiceRepository,
	orderRepo portsrepo.OrderRepository,
	resolver portssvc.CustomerResolverSvc,
	options ...ProfileServiceOption,
) portssvc.ProfileSvc {
	svc := &profileService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		resolver:     resolver,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProfileSvc = (*profileService)(nil)

// GetProfile returns the portal user and, when one is linked, the customer.
// A missing customer linkage is not an error here; the profile simply omits
// the customer fields.
func (s *profileService) GetProfile(ctx context.Context, portalUser string) (*domain.PortalUser, *domain.Customer, error) {
	if portalUser == "" {
		return nil, nil, apperrors.ErrUnauthenticated
	}

	user, err := s.customerRepo.FindPortalUserByEmail(ctx, portalUser)
	if err != nil {
		s.LogError(ctx, err, "Failed to load portal user", slog.String("portal_user", portalUser))
		return nil, nil, fmt.Errorf("failed to load portal user: %w", err)
	}

	customerID, err := s.resolver.ResolveCustomer(ctx, portalUser)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotLinked) {
			return user, nil, nil
		}
		return nil, nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customer for profile", slog.String("customer_id", customerID))
		return nil, nil, fmt.Errorf("failed to load customer %s: %w", customerID, err)
	}

	return user, customer, nil
}

// GetDashboard returns the user's name, customer id and standing aggregates.
// Unlike GetProfile, a missing customer linkage is a hard failure here.
func (s *profileService) GetDashboard(ctx context.Context, portalUser string) (string, string, *domain.DashboardStats, error) {
	customerID, err := s.resolver.ResolveCustomer(ctx, portalUser)
	if err != nil {
		return "", "", nil, err
	}

	user, err := s.customerRepo.FindPortalUserByEmail(ctx, portalUser)
	if err != nil {
		s.LogError(ctx, err, "Failed to load portal user for dashboard", slog.String("portal_user", portalUser))
		return "", "", nil, fmt.Errorf("failed to load portal user: %w", err)
	}

	now := s.now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	billing, err := s.invoiceRepo.SumBillingSince(ctx, customerID, yearStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum billing", slog.String("customer_id", customerID))
		return "", "", nil, fmt.Errorf("failed to sum billing: %w", err)
	}
	unpaid, err := s.invoiceRepo.SumOutstanding(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum outstanding", slog.String("customer_id", customerID))
		return "", "", nil, fmt.Errorf("failed to sum outstanding: %w", err)
	}
	openOrders, err := s.orderRepo.CountOpenOrders(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count open orders", slog.String("customer_id", customerID))
		return "", "", nil, fmt.Errorf("failed to count open orders: %w", err)
	}

	stats := &domain.DashboardStats{
		BillingThisYear: billing,
		TotalUnpaid:     unpaid,
		OpenOrders:      openOrders,
	}
	return user.FullName, customerID, stats, nil
}
