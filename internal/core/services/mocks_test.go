package services_test

import (
	"context"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindPortalUserByEmail(ctx context.Context, email string) (*domain.PortalUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortalUser), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerIDByPortalUser(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerIDByContactEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerRepository) FindGroupDefaultPriceList(ctx context.Context, groupName string) (string, error) {
	args := m.Called(ctx, groupName)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerRepository) FindSellingSettingsPriceList(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

var _ portsrepo.CatalogRepository = (*MockCatalogRepository)(nil)

func (m *MockCatalogRepository) ListGroupWithDescendants(ctx context.Context, rootGroup string) ([]string, error) {
	args := m.Called(ctx, rootGroup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogRepository) ListSalesItems(ctx context.Context, groups []string, priceList string) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, groups, priceList)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) ListUOMConversions(ctx context.Context, itemCodes []string) ([]domain.UOMConversion, error) {
	args := m.Called(ctx, itemCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UOMConversion), args.Error(1)
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

var _ portsrepo.OrderRepository = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) FindExistingOrderName(ctx context.Context, customerID string, deliveryDate time.Time, shift string) (string, error) {
	args := m.Called(ctx, customerID, deliveryDate, shift)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, customerID string, from, to time.Time) ([]domain.SalesOrder, error) {
	args := m.Called(ctx, customerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesOrder), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByName(ctx context.Context, name string) (*domain.SalesOrder, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesOrder), args.Error(1)
}

func (m *MockOrderRepository) CountOpenOrders(ctx context.Context, customerID string) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepository = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, customerID string, from, to time.Time) ([]domain.SalesInvoice, error) {
	args := m.Called(ctx, customerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByName(ctx context.Context, name string) (*domain.SalesInvoice, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) SumBillingSince(ctx context.Context, customerID string, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, customerID, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockInvoiceRepository) SumOutstanding(ctx context.Context, customerID string) (decimal.Decimal, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) ListEntries(ctx context.Context, customerID string, from, to time.Time, voucherType string, excludedTypes []string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, customerID, from, to, voucherType, excludedTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) OpeningBalance(ctx context.Context, customerID string, before time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, customerID, before)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ScaleRepository ---
type MockScaleRepository struct {
	mock.Mock
}

var _ portsrepo.ScaleRepository = (*MockScaleRepository)(nil)

func (m *MockScaleRepository) FindDevice(ctx context.Context, deviceID string) (*domain.ScaleDevice, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScaleDevice), args.Error(1)
}

func (m *MockScaleRepository) ListDevices(ctx context.Context) ([]domain.ScaleDevice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScaleDevice), args.Error(1)
}

func (m *MockScaleRepository) SaveWeightLog(ctx context.Context, log domain.WeightLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockScaleRepository) UpdateLastPing(ctx context.Context, deviceID string, at time.Time) error {
	args := m.Called(ctx, deviceID, at)
	return args.Error(0)
}

func (m *MockScaleRepository) DeleteLogsBefore(ctx context.Context, deviceID string, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, deviceID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

var _ portsrepo.StockRepository = (*MockStockRepository)(nil)

func (m *MockStockRepository) ListStock(ctx context.Context, filter domain.StockFilter) ([]domain.StockRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockRow), args.Error(1)
}

// --- Mock PricingSvc (as used by CatalogService) ---
type MockPricingService struct {
	mock.Mock
}

var _ portssvc.PricingSvc = (*MockPricingService)(nil)

func (m *MockPricingService) ResolvePriceList(ctx context.Context, customerID string) (string, error) {
	args := m.Called(ctx, customerID)
	return args.String(0), args.Error(1)
}

// --- Mock CustomerResolverSvc (as used by ProfileService) ---
type MockCustomerResolver struct {
	mock.Mock
}

var _ portssvc.CustomerResolverSvc = (*MockCustomerResolver)(nil)

func (m *MockCustomerResolver) ResolveCustomer(ctx context.Context, portalUser string) (string, error) {
	args := m.Called(ctx, portalUser)
	return args.String(0), args.Error(1)
}
