package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils"
)

// pricingService resolves the price list applicable to a customer.
type pricingService struct {
	BaseService
	customerRepo      portsrepo.CustomerRepository
	fallbackPriceList string
}

// NewPricingService creates a new pricing service. fallbackPriceList is the
// terminal tier of the cascade and must be non-empty.
func NewPricingService(customerRepo portsrepo.CustomerRepository, fallbackPriceList string) portssvc.PricingSvc {
	return &pricingService{
		customerRepo:      customerRepo,
		fallbackPriceList: fallbackPriceList,
	}
}

var _ portssvc.PricingSvc = (*pricingService)(nil)

// ResolvePriceList cascades customer default -> customer group default ->
// selling settings default -> configured fallback. First non-empty tier wins;
// later tiers are not consulted. Read failures abort the cascade.
func (s *pricingService) ResolvePriceList(ctx context.Context, customerID string) (string, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customer for price list resolution", slog.String("customer_id", customerID))
		return "", fmt.Errorf("failed to load customer %s: %w", customerID, err)
	}

	priceList, err := utils.FirstOf(ctx,
		func(context.Context) (string, error) {
			return customer.DefaultPriceList, nil
		},
		func(ctx context.Context) (string, error) {
			if customer.CustomerGroup == "" {
				return "", nil
			}
			return s.customerRepo.FindGroupDefaultPriceList(ctx, customer.CustomerGroup)
		},
		func(ctx context.Context) (string, error) {
			return s.customerRepo.FindSellingSettingsPriceList(ctx)
		},
	)
	if err != nil {
		s.LogError(ctx, err, "Price list cascade read failed", slog.String("customer_id", customerID))
		return "", fmt.Errorf("failed to resolve price list for %s: %w", customerID, err)
	}

	if priceList == "" {
		priceList = s.fallbackPriceList
	}

	return priceList, nil
}
