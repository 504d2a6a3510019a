package services

import (
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/platform/config"
	"github.com/BDF-Tech/BDF-Mobile/internal/repositories/database/pgsql"
)

// NewServiceContainer wires every service from the repository container and
// the application configuration.
func NewServiceContainer(repos *pgsql.RepositoryContainer, cfg *config.Config) *portssvc.ServiceContainer {
	resolver := NewCustomerResolver(repos.Customer)
	pricing := NewPricingService(repos.Customer, cfg.FallbackPriceList)

	return &portssvc.ServiceContainer{
		Auth:             NewAuthService(repos.Customer),
		CustomerResolver: resolver,
		Pricing:          pricing,
		Catalog:          NewCatalogService(repos.Catalog, pricing, cfg.CatalogRootGroups),
		Order:            NewOrderService(repos.Order, cfg.OrderListWindowDays, cfg.DefaultOrderShift),
		Invoice:          NewInvoiceService(repos.Invoice, cfg.InvoiceListWindowDays),
		Ledger:           NewLedgerService(repos.Ledger, cfg.LedgerDefaultFilter, cfg.LedgerWindowDays, cfg.LedgerExcludedVoucherTypes),
		Profile:          NewProfileService(repos.Customer, repos.Invoice, repos.Order, resolver),
		Scale:            NewScaleService(repos.Scale, cfg.ScaleRetentionDays),
		Stock:            NewStockService(repos.Stock, repos.Catalog),
	}
}
