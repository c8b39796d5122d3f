package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupShippingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&shipping.ShipCountry{}, &shipping.RateTableShipMethod{})
	require.NoError(t, err)

	return db
}

func savedMethod(t *testing.T, repo *GormShipMethodRepository, countryID uuid.UUID, providerKey, name string) *shipping.RateTableShipMethod {
	method, err := shipping.NewRateTableShipMethod(countryID, providerKey, shipping.RateTableByWeight)
	require.NoError(t, err)
	require.NoError(t, method.Rename(name))
	require.NoError(t, repo.Save(context.Background(), method))
	return method
}

func TestGormShipMethodRepository_Save(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewGormShipMethodRepository(db)
	ctx := context.Background()

	t.Run("saves a method and round-trips its rate table", func(t *testing.T) {
		method := savedMethod(t, repo, uuid.New(), "shipping.fixedrate", "Ground")
		tiers := []shipping.RateTier{
			{RangeLow: decimal.Zero, RangeHigh: decimal.NewFromInt(5), Rate: decimal.NewFromFloat(4.99)},
			{RangeLow: decimal.NewFromInt(5), RangeHigh: decimal.NewFromInt(20), Rate: decimal.NewFromFloat(9.99)},
		}
		require.NoError(t, method.ReplaceRateTable(tiers))
		require.NoError(t, repo.Save(ctx, method))

		found, err := repo.FindByID(ctx, method.ID)

		require.NoError(t, err)
		assert.Equal(t, "Ground", found.Name)
		assert.Equal(t, shipping.RateTableByWeight, found.RateTableType)
		require.Len(t, found.RateTiers, 2)
		assert.True(t, found.RateTiers[1].Rate.Equal(decimal.NewFromFloat(9.99)))
	})

	t.Run("returns ErrNotFound for unknown method", func(t *testing.T) {
		found, err := repo.FindByID(ctx, uuid.New())

		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormShipMethodRepository_FindByCountryAndProvider(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewGormShipMethodRepository(db)
	ctx := context.Background()

	t.Run("returns only methods of the pair, ordered by name", func(t *testing.T) {
		countryID := uuid.New()
		savedMethod(t, repo, countryID, "shipping.fixedrate", "Standard")
		savedMethod(t, repo, countryID, "shipping.fixedrate", "Express")
		savedMethod(t, repo, countryID, "shipping.other", "Other Provider")
		savedMethod(t, repo, uuid.New(), "shipping.fixedrate", "Other Country")

		methods, err := repo.FindByCountryAndProvider(ctx, countryID, "shipping.fixedrate")

		require.NoError(t, err)
		require.Len(t, methods, 2)
		assert.Equal(t, "Express", methods[0].Name)
		assert.Equal(t, "Standard", methods[1].Name)
	})

	t.Run("returns empty slice when the pair has no methods", func(t *testing.T) {
		methods, err := repo.FindByCountryAndProvider(ctx, uuid.New(), "shipping.fixedrate")

		assert.NoError(t, err)
		assert.Empty(t, methods)
	})
}

func TestGormShipMethodRepository_Delete(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewGormShipMethodRepository(db)
	ctx := context.Background()

	t.Run("deletes an existing method", func(t *testing.T) {
		method := savedMethod(t, repo, uuid.New(), "shipping.fixedrate", "Ground")

		require.NoError(t, repo.Delete(ctx, method.ID))

		_, err := repo.FindByID(ctx, method.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returns ErrNotFound for unknown method", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}

func TestGormShipCountryRepository_Save(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewGormShipCountryRepository(db)
	ctx := context.Background()

	t.Run("saves and reloads a country with provider keys", func(t *testing.T) {
		country, err := shipping.NewShipCountry("US", "United States")
		require.NoError(t, err)
		country.ConfigureProvider("shipping.fixedrate")
		require.NoError(t, repo.Save(ctx, country))

		found, err := repo.FindByID(ctx, country.ID)

		require.NoError(t, err)
		assert.Equal(t, "US", found.CountryCode)
		assert.Equal(t, []string{"shipping.fixedrate"}, found.ProviderKeys)
	})
}

func TestGormShipCountryRepository_FindByCountryCode(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewGormShipCountryRepository(db)
	ctx := context.Background()

	t.Run("matches case-insensitively", func(t *testing.T) {
		country, err := shipping.NewShipCountry("DE", "Germany")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, country))

		found, err := repo.FindByCountryCode(ctx, "de")

		require.NoError(t, err)
		assert.Equal(t, country.ID, found.ID)
	})

	t.Run("returns ErrNotFound for unconfigured country", func(t *testing.T) {
		found, err := repo.FindByCountryCode(ctx, "FR")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormShipCountryRepository_Delete(t *testing.T) {
	db := setupShippingTestDB(t)
	countryRepo := NewGormShipCountryRepository(db)
	methodRepo := NewGormShipMethodRepository(db)
	ctx := context.Background()

	t.Run("deletes the country and its methods", func(t *testing.T) {
		country, err := shipping.NewShipCountry("GB", "United Kingdom")
		require.NoError(t, err)
		require.NoError(t, countryRepo.Save(ctx, country))
		savedMethod(t, methodRepo, country.ID, "shipping.fixedrate", "Royal Ground")

		require.NoError(t, countryRepo.Delete(ctx, country.ID))

		_, err = countryRepo.FindByID(ctx, country.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		methods, err := methodRepo.FindByCountryAndProvider(ctx, country.ID, "shipping.fixedrate")
		require.NoError(t, err)
		assert.Empty(t, methods)
	})

	t.Run("returns ErrNotFound for unknown country", func(t *testing.T) {
		assert.ErrorIs(t, countryRepo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}
