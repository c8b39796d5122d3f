package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Product{},
		&catalog.ProductOption{},
		&catalog.ProductAttribute{},
		&catalog.ProductVariant{},
		&catalog.CatalogInventory{},
	)
	require.NoError(t, err)

	return db
}

// configuredShirt builds a product with a Color option and one realized variant
func configuredShirt(t *testing.T) *catalog.Product {
	product, err := catalog.NewProduct("T-Shirt", "SHIRT", decimal.NewFromFloat(19.99))
	require.NoError(t, err)

	color, err := product.AddOption("Color", true)
	require.NoError(t, err)
	red, err := product.AddChoice(color.ID, "Red", "RD")
	require.NoError(t, err)
	_, err = product.AddChoice(color.ID, "Blue", "BL")
	require.NoError(t, err)

	_, err = product.AddVariant([]catalog.ProductAttribute{*red}, "SHIRT-RD", decimal.NewFromFloat(19.99))
	require.NoError(t, err)

	return product
}

func TestGormProductRepository_Save(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("persists the full aggregate", func(t *testing.T) {
		product := configuredShirt(t)

		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "T-Shirt", found.Name)
		assert.Equal(t, "SHIRT", found.SKU)
		require.Len(t, found.Options, 1)
		assert.Equal(t, "Color", found.Options[0].Name)
		require.Len(t, found.Options[0].Choices, 2)
		require.Len(t, found.Variants, 2)

		master := found.MasterVariant()
		require.NotNil(t, master)
		assert.Empty(t, master.Attributes)

		realized := found.Variants[0]
		if realized.Master {
			realized = found.Variants[1]
		}
		assert.Equal(t, "SHIRT-RD", realized.SKU)
		require.Len(t, realized.Attributes, 1)
		assert.Equal(t, "Red", realized.Attributes[0].Name)
	})

	t.Run("returns ErrNotFound for unknown product", func(t *testing.T) {
		found, err := repo.FindByID(ctx, uuid.New())

		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindBySKU(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("matches SKU case-insensitively", func(t *testing.T) {
		product := configuredShirt(t)
		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindBySKU(ctx, "shirt")

		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("returns ErrNotFound for unknown SKU", func(t *testing.T) {
		found, err := repo.FindBySKU(ctx, "MISSING")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_ExistsBySKU(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := configuredShirt(t)
	require.NoError(t, repo.Save(ctx, product))

	exists, err := repo.ExistsBySKU(ctx, "shirt")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBySKU(ctx, "MISSING")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormProductRepository_Delete(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("deletes an existing product", func(t *testing.T) {
		product := configuredShirt(t)
		require.NoError(t, repo.Save(ctx, product))

		require.NoError(t, repo.Delete(ctx, product.ID))

		_, err := repo.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returns ErrNotFound for unknown product", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindAllAndCount(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	for _, sku := range []string{"ALPHA", "BRAVO", "CHARLIE"} {
		product, err := catalog.NewProduct("Product "+sku, sku, decimal.NewFromInt(10))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, product))
	}

	t.Run("paginates ordered by sku", func(t *testing.T) {
		filter := shared.Filter{Page: 2, PageSize: 2, OrderBy: "sku", OrderDir: "asc"}
		products, err := repo.FindAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "CHARLIE", products[0].SKU)
	})

	t.Run("counts all products", func(t *testing.T) {
		count, err := repo.Count(ctx, shared.Filter{})

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestGormVariantRepository_Save(t *testing.T) {
	db := setupCatalogTestDB(t)
	productRepo := NewGormProductRepository(db)
	variantRepo := NewGormVariantRepository(db)
	ctx := context.Background()

	t.Run("persists inventory records and removals", func(t *testing.T) {
		product := configuredShirt(t)
		require.NoError(t, productRepo.Save(ctx, product))
		master := product.MasterVariant()
		catalogID := uuid.New()

		variant, err := variantRepo.FindByID(ctx, master.ID)
		require.NoError(t, err)

		variant.Inventories = append(variant.Inventories, catalog.CatalogInventory{
			CatalogID: catalogID,
			VariantID: variant.ID,
			Count:     12,
		})
		require.NoError(t, variantRepo.Save(ctx, variant))

		reloaded, err := variantRepo.FindByID(ctx, variant.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Inventories, 1)
		assert.Equal(t, 12, reloaded.Inventories[0].Count)

		reloaded.Inventories = nil
		require.NoError(t, variantRepo.Save(ctx, reloaded))

		reloaded, err = variantRepo.FindByID(ctx, variant.ID)
		require.NoError(t, err)
		assert.Empty(t, reloaded.Inventories)
	})

	t.Run("returns ErrNotFound for unknown variant", func(t *testing.T) {
		found, err := variantRepo.FindByID(ctx, uuid.New())

		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
