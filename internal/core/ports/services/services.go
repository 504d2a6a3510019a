package services

import (
	"context"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	"github.com/BDF-Tech/BDF-Mobile/internal/dto"
)

// AuthSvc authenticates portal users.
type AuthSvc interface {
	// Login verifies credentials and returns the portal user on success.
	Login(ctx context.Context, email, password string) (*domain.PortalUser, error)
}

// CustomerResolverSvc maps the authenticated portal user to a customer.
type CustomerResolverSvc interface {
	// ResolveCustomer returns the customer linked to the portal user.
	// Returns apperrors.ErrUnauthenticated for an empty user and
	// apperrors.ErrNotLinked when no customer association exists.
	ResolveCustomer(ctx context.Context, portalUser string) (string, error)
}

// PricingSvc resolves the price list applicable to a customer.
type PricingSvc interface {
	// ResolvePriceList never returns an empty name on success; the configured
	// fallback guarantees a result.
	ResolvePriceList(ctx context.Context, customerID string) (string, error)
}

// CatalogSvc assembles the item catalog.
type CatalogSvc interface {
	// ListItems returns the catalog priced for the customer, plus the
	// resolved price list name.
	ListItems(ctx context.Context, customerID string) ([]domain.CatalogItem, string, error)
}

// OrderSvc manages sales orders on behalf of a customer.
type OrderSvc interface {
	PlaceOrder(ctx context.Context, customerID string, req dto.PlaceOrderRequest) (string, error)
	ListOrders(ctx context.Context, customerID, filterType, startDate, endDate string) ([]domain.SalesOrder, error)
	GetOrderDetails(ctx context.Context, customerID, orderName string) (*domain.SalesOrder, error)
}

// InvoiceSvc exposes a customer's invoices.
type InvoiceSvc interface {
	ListInvoices(ctx context.Context, customerID, filterType, startDate, endDate string) ([]domain.SalesInvoice, error)
	GetInvoiceDetails(ctx context.Context, customerID, invoiceName string) (*domain.SalesInvoice, error)
}

// LedgerSvc computes the customer ledger with running balances.
type LedgerSvc interface {
	Statement(ctx context.Context, customerID, filterType, startDate, endDate, voucherType string) (*domain.LedgerStatement, error)
}

// ProfileSvc exposes the portal user's profile and dashboard.
type ProfileSvc interface {
	GetProfile(ctx context.Context, portalUser string) (*domain.PortalUser, *domain.Customer, error)
	GetDashboard(ctx context.Context, portalUser string) (string, string, *domain.DashboardStats, error)
}

// ScaleSvc ingests scale-hardware readings and prunes old logs.
type ScaleSvc interface {
	// Ingest parses and stores one reading; precondition failures surface as
	// apperrors sentinels rather than envelopes.
	Ingest(ctx context.Context, payload string) error

	// CleanupExpiredLogs deletes logs past each device's retention window.
	CleanupExpiredLogs(ctx context.Context) error
}

// StockSvc exposes the stock dashboard.
type StockSvc interface {
	ListStock(ctx context.Context, filter domain.StockFilter) ([]domain.StockRow, error)
}

// ServiceContainer aggregates every service the handlers need.
type ServiceContainer struct {
	Auth             AuthSvc
	CustomerResolver CustomerResolverSvc
	Pricing          PricingSvc
	Catalog          CatalogSvc
	Order            OrderSvc
	Invoice          InvoiceSvc
	Ledger           LedgerSvc
	Profile          ProfileSvc
	Scale            ScaleSvc
	Stock            StockSvc
}
