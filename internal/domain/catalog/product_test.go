package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with master variant", func(t *testing.T) {
		product, err := NewProduct("Shirt", "shirt", decimal.NewFromInt(20))

		require.NoError(t, err)
		assert.Equal(t, "Shirt", product.Name)
		assert.Equal(t, "SHIRT", product.SKU, "SKU is normalized to upper case")
		assert.True(t, product.Available)

		master := product.MasterVariant()
		require.NotNil(t, master)
		assert.True(t, master.Master)
		assert.Empty(t, master.Attributes, "master variant carries the empty signature")
		assert.True(t, master.Price.Equal(decimal.NewFromInt(20)))
	})

	t.Run("emits created event", func(t *testing.T) {
		product, err := NewProduct("Shirt", "SHIRT", decimal.Zero)
		require.NoError(t, err)

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("", "SHIRT", decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects invalid SKU characters", func(t *testing.T) {
		_, err := NewProduct("Shirt", "SHIRT 01", decimal.Zero)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_SKU", domainErr.Code)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Shirt", "SHIRT", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestProduct_AddOption(t *testing.T) {
	product := newShirt(t)

	t.Run("options keep insertion order", func(t *testing.T) {
		color, err := product.AddOption("Color", true)
		require.NoError(t, err)
		size, err := product.AddOption("Size", false)
		require.NoError(t, err)

		assert.Equal(t, 0, color.SortOrder)
		assert.Equal(t, 1, size.SortOrder)
		assert.True(t, product.HasOptions())
	})

	t.Run("duplicate name is rejected case-insensitively", func(t *testing.T) {
		_, err := product.AddOption("COLOR", true)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestProduct_AddChoice(t *testing.T) {
	product := newShirt(t)
	color, err := product.AddOption("Color", true)
	require.NoError(t, err)

	t.Run("choices keep insertion order", func(t *testing.T) {
		red, err := product.AddChoice(color.ID, "Red", "RD")
		require.NoError(t, err)
		blue, err := product.AddChoice(color.ID, "Blue", "BL")
		require.NoError(t, err)

		assert.Equal(t, 0, red.SortOrder)
		assert.Equal(t, 1, blue.SortOrder)
	})

	t.Run("duplicate choice name is rejected", func(t *testing.T) {
		_, err := product.AddChoice(color.ID, "red", "R2")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestProduct_AddVariant(t *testing.T) {
	product := newConfiguredShirt(t)
	red := choiceNamed(t, product, "Color", "Red")
	blue := choiceNamed(t, product, "Color", "Blue")
	small := choiceNamed(t, product, "Size", "S")

	t.Run("realizes a combination", func(t *testing.T) {
		variant, err := product.AddVariant([]ProductAttribute{red, small}, "SHIRT-RD-S", decimal.NewFromInt(22))
		require.NoError(t, err)
		assert.False(t, variant.Master)
		assert.Len(t, variant.Attributes, 2)
	})

	t.Run("duplicate signature is rejected regardless of order", func(t *testing.T) {
		_, err := product.AddVariant([]ProductAttribute{small, red}, "SHIRT-RD-S2", decimal.NewFromInt(22))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("two choices of one option are rejected", func(t *testing.T) {
		_, err := product.AddVariant([]ProductAttribute{red, blue}, "SHIRT-RD-BL", decimal.NewFromInt(22))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("foreign attribute is rejected", func(t *testing.T) {
		other := newConfiguredShirt(t)
		foreign := choiceNamed(t, other, "Color", "Red")
		_, err := product.AddVariant([]ProductAttribute{foreign}, "SHIRT-X", decimal.NewFromInt(22))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("empty attribute set is rejected", func(t *testing.T) {
		_, err := product.AddVariant(nil, "SHIRT-EMPTY", decimal.NewFromInt(22))
		assert.Error(t, err)
	})
}

func TestProduct_Update(t *testing.T) {
	product := newShirt(t)
	initialVersion := product.Version

	err := product.Update("Better Shirt", "Now softer")

	require.NoError(t, err)
	assert.Equal(t, "Better Shirt", product.Name)
	assert.Equal(t, "Now softer", product.Description)
	assert.Greater(t, product.Version, initialVersion)
}

func TestProduct_SetAvailable(t *testing.T) {
	product := newShirt(t)

	product.SetAvailable(false)

	assert.False(t, product.Available)
}
