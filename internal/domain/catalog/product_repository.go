package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence.
// Implementations load the full aggregate: options with choices, variants
// with attributes and catalog inventory records.
type ProductRepository interface {
	// FindByID finds a product by its key
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product by its SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product aggregate
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsBySKU checks if a product with the given SKU exists
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}

// VariantRepository defines variant-level persistence for callers that
// mutate a single variant (inventory association) without reloading the
// whole product aggregate.
type VariantRepository interface {
	// FindByID finds a variant with its attributes and inventory records
	FindByID(ctx context.Context, id uuid.UUID) (*ProductVariant, error)

	// Save persists a variant and its owned inventory records
	Save(ctx context.Context, variant *ProductVariant) error
}
