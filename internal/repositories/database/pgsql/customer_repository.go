package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type customerRepository struct {
	BaseRepository
}

// newCustomerRepository creates a repository for customer and portal-user data.
func newCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &customerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepository = (*customerRepository)(nil)

func (r *customerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, customer_name, COALESCE(customer_group, ''), COALESCE(default_price_list, ''),
		       contract_start_date, COALESCE(food_license_number, ''), food_license_validity, disabled
		FROM customers
		WHERE customer_id = $1
	`
	var c domain.Customer
	err := r.Pool.QueryRow(ctx, query, customerID).Scan(
		&c.CustomerID,
		&c.CustomerName,
		&c.CustomerGroup,
		&c.DefaultPriceList,
		&c.ContractStartDate,
		&c.FoodLicenseNumber,
		&c.FoodLicenseValidity,
		&c.Disabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying customer %s: %w", customerID, err)
	}
	return &c, nil
}

func (r *customerRepository) FindPortalUserByEmail(ctx context.Context, email string) (*domain.PortalUser, error) {
	query := `
		SELECT email, full_name, COALESCE(gender, ''), birth_date, COALESCE(image, ''),
		       password_hash, COALESCE(customer_id, ''), enabled
		FROM portal_users
		WHERE email = $1
	`
	var u domain.PortalUser
	err := r.Pool.QueryRow(ctx, query, email).Scan(
		&u.Email,
		&u.FullName,
		&u.Gender,
		&u.BirthDate,
		&u.Image,
		&u.PasswordHash,
		&u.CustomerID,
		&u.Enabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying portal user %s: %w", email, err)
	}
	return &u, nil
}

func (r *customerRepository) FindCustomerIDByPortalUser(ctx context.Context, email string) (string, error) {
	query := `SELECT COALESCE(customer_id, '') FROM portal_users WHERE email = $1`
	var customerID string
	err := r.Pool.QueryRow(ctx, query, email).Scan(&customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error querying portal link for %s: %w", email, err)
	}
	return customerID, nil
}

func (r *customerRepository) FindCustomerIDByContactEmail(ctx context.Context, email string) (string, error) {
	query := `SELECT COALESCE(customer_id, '') FROM contacts WHERE email = $1 LIMIT 1`
	var customerID string
	err := r.Pool.QueryRow(ctx, query, email).Scan(&customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error querying contact link for %s: %w", email, err)
	}
	return customerID, nil
}

func (r *customerRepository) FindGroupDefaultPriceList(ctx context.Context, groupName string) (string, error) {
	query := `SELECT COALESCE(default_price_list, '') FROM customer_groups WHERE name = $1`
	var priceList string
	err := r.Pool.QueryRow(ctx, query, groupName).Scan(&priceList)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error querying customer group %s: %w", groupName, err)
	}
	return priceList, nil
}

func (r *customerRepository) FindSellingSettingsPriceList(ctx context.Context) (string, error) {
	// selling_settings is a single-row settings table.
	query := `SELECT COALESCE(selling_price_list, '') FROM selling_settings LIMIT 1`
	var priceList string
	err := r.Pool.QueryRow(ctx, query).Scan(&priceList)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error querying selling settings: %w", err)
	}
	return priceList, nil
}
