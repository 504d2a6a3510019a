package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
)

// invoiceService exposes a customer's submitted invoices.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepository
	windowDays  int
	now         func() time.Time
}

// InvoiceServiceOption configures the invoice service.
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceClock overrides the clock, for tests.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, windowDays int, options ...InvoiceServiceOption) portssvc.InvoiceSvc {
	svc := &invoiceService{
		invoiceRepo: invoiceRepo,
		windowDays:  windowDays,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvc = (*invoiceService)(nil)

// ListInvoices returns submitted invoices in the resolved window, newest first.
func (s *invoiceService) ListInvoices(ctx context.Context, customerID, filterType, startDate, endDate string) ([]domain.SalesInvoice, error) {
	from, to, err := resolveWindow(filterType, startDate, endDate, s.now(), s.windowDays)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, customerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// GetInvoiceDetails returns the full invoice after verifying it belongs to
// the calling customer.
func (s *invoiceService) GetInvoiceDetails(ctx context.Context, customerID, invoiceName string) (*domain.SalesInvoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByName(ctx, invoiceName)
	if err != nil {
		return nil, err
	}
	if invoice.CustomerID != customerID {
		s.LogWarn(ctx, "Invoice ownership check failed",
			slog.String("customer_id", customerID),
			slog.String("invoice_name", invoiceName))
		return nil, apperrors.ErrForbidden
	}
	return invoice, nil
}
