package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/shared"
)

// DefaultCombinationsLimit bounds combination previews when the caller does
// not supply a limit. The combination space grows multiplicatively with
// option count, so previews are always taken from the lazy sequence.
const DefaultCombinationsLimit = 200

// VariantService orchestrates variant composition: enumerating the
// combination space, matching attribute selections to stored variants, and
// realizing new variants.
type VariantService struct {
	productRepo catalog.ProductRepository
	composer    *catalog.VariantComposer
}

// NewVariantService creates a new VariantService
func NewVariantService(productRepo catalog.ProductRepository, composer *catalog.VariantComposer) *VariantService {
	return &VariantService{
		productRepo: productRepo,
		composer:    composer,
	}
}

// Combinations enumerates up to limit attribute combinations of the product.
// The underlying sequence is lazy; enumeration stops as soon as the limit is
// reached, regardless of the size of the full space.
func (s *VariantService) Combinations(ctx context.Context, productID uuid.UUID, limit int) (*CombinationsResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultCombinationsLimit
	}

	response := &CombinationsResponse{Combinations: [][]AttributeResponse{}}
	for combination := range s.composer.Combinations(product) {
		if len(response.Combinations) == limit {
			response.Truncated = true
			break
		}
		attrs := make([]AttributeResponse, len(combination))
		for i := range combination {
			attrs[i] = ToAttributeResponse(&combination[i])
		}
		response.Combinations = append(response.Combinations, attrs)
	}
	return response, nil
}

// FindVariant matches an attribute selection against the product's stored
// variants. A selection with no matching variant returns ErrNotFound.
func (s *VariantService) FindVariant(ctx context.Context, productID uuid.UUID, req FindVariantRequest) (*VariantResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	variant := s.composer.FindVariantByKeys(product, req.AttributeKeys)
	if variant == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "No variant matches this attribute selection")
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// VariantForPurchase returns the variant a catalog purchase of the bare
// product resolves to: the master variant when the product has no options,
// otherwise an invalid-state error forcing attribute selection.
func (s *VariantService) VariantForPurchase(ctx context.Context, productID uuid.UUID) (*VariantResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	variant := s.composer.VariantForPurchaseNoOptions(product)
	if variant == nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Product has options; an attribute selection is required")
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// CreateVariant realizes one attribute combination as a stored variant.
// When no SKU is supplied, one is suggested from the product SKU and the
// attributes' SKU fragments in option order. When no price is supplied, the
// master variant's price carries over.
func (s *VariantService) CreateVariant(ctx context.Context, productID uuid.UUID, req CreateVariantRequest) (*VariantResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	attributes, err := resolveAttributes(product, req.AttributeKeys)
	if err != nil {
		return nil, err
	}

	sku := req.SKU
	if sku == "" {
		sku = s.composer.SuggestSKU(product, attributes)
	}

	price := product.MasterVariant().Price
	if req.Price != nil {
		price = *req.Price
	}

	variant, err := product.AddVariant(attributes, sku, price)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// resolveAttributes maps attribute keys back to the product's own choices
func resolveAttributes(product *catalog.Product, keys []uuid.UUID) ([]catalog.ProductAttribute, error) {
	attributes := make([]catalog.ProductAttribute, 0, len(keys))
	for _, key := range keys {
		var found *catalog.ProductAttribute
		for i := range product.Options {
			if choice := product.Options[i].Choice(key); choice != nil {
				found = choice
				break
			}
		}
		if found == nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Attribute does not belong to this product")
		}
		attributes = append(attributes, *found)
	}
	return attributes, nil
}
