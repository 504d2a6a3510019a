package pgsql

import (
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer aggregates every repository implementation.
type RepositoryContainer struct {
	Customer portsrepo.CustomerRepository
	Catalog  portsrepo.CatalogRepository
	Order    portsrepo.OrderRepository
	Invoice  portsrepo.InvoiceRepository
	Ledger   portsrepo.LedgerRepository
	Scale    portsrepo.ScaleRepository
	Stock    portsrepo.StockRepository
}

// NewRepositoryContainer creates all repositories sharing the given pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Customer: newCustomerRepository(pool),
		Catalog:  newCatalogRepository(pool),
		Order:    newOrderRepository(pool),
		Invoice:  newInvoiceRepository(pool),
		Ledger:   newLedgerRepository(pool),
		Scale:    newScaleRepository(pool),
		Stock:    newStockRepository(pool),
	}
}
