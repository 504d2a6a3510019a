package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	repo := newCustomerRepository(pool)

	_, err := pool.Exec(ctx, `INSERT INTO customer_groups (name, default_price_list) VALUES ('Dairy Retail', 'Retail Selling')`)
	require.NoError(t, err)

	contractStart := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err = pool.Exec(ctx, `
		INSERT INTO customers (customer_id, customer_name, customer_group, default_price_list, contract_start_date, food_license_number, disabled)
		VALUES ('CUST-0001', 'Anand Dairy Stores', 'Dairy Retail', 'Contract Selling', $1, 'FL-12345', FALSE)
	`, contractStart)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		INSERT INTO portal_users (email, full_name, password_hash, customer_id, enabled)
		VALUES ('owner@ananddairy.example', 'Anand Owner', 'not-a-real-hash', 'CUST-0001', FALSE)
	`)
	require.NoError(t, err)

	t.Run("FindCustomerByID", func(t *testing.T) {
		c, err := repo.FindCustomerByID(ctx, "CUST-0001")
		require.NoError(t, err)
		assert.Equal(t, "CUST-0001", c.CustomerID)
		assert.Equal(t, "Anand Dairy Stores", c.CustomerName)
		assert.Equal(t, "Dairy Retail", c.CustomerGroup)
		assert.Equal(t, "Contract Selling", c.DefaultPriceList)
		assert.Equal(t, "FL-12345", c.FoodLicenseNumber)
		require.NotNil(t, c.ContractStartDate)
		assert.Equal(t, contractStart.Format("2006-01-02"), c.ContractStartDate.Format("2006-01-02"))
		assert.Nil(t, c.FoodLicenseValidity)
		assert.False(t, c.Disabled)
	})

	t.Run("FindCustomerByIDUnknown", func(t *testing.T) {
		_, err := repo.FindCustomerByID(ctx, "CUST-NOPE")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("FindPortalUserByEmailCarriesEnabledFlag", func(t *testing.T) {
		u, err := repo.FindPortalUserByEmail(ctx, "owner@ananddairy.example")
		require.NoError(t, err)
		assert.Equal(t, "Anand Owner", u.FullName)
		assert.Equal(t, "CUST-0001", u.CustomerID)
		assert.False(t, u.Enabled)
	})

	t.Run("PriceListCascadeLookups", func(t *testing.T) {
		groupList, err := repo.FindGroupDefaultPriceList(ctx, "Dairy Retail")
		require.NoError(t, err)
		assert.Equal(t, "Retail Selling", groupList)

		// Singleton settings table is empty until seeded; the lookup is optional.
		settingsList, err := repo.FindSellingSettingsPriceList(ctx)
		require.NoError(t, err)
		assert.Equal(t, "", settingsList)
	})
}
