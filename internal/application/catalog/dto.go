package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	SKU         string          `json:"sku" binding:"required,min=1,max=50"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Available   *bool  `json:"available"`
}

// AddOptionRequest represents a request to add an option axis to a product
type AddOptionRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Required *bool  `json:"required"`
}

// AddChoiceRequest represents a request to add a choice to an option
type AddChoiceRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	SKUFragment string `json:"sku_fragment" binding:"max=20"`
}

// CreateVariantRequest represents a request to realize one attribute
// combination as a stored variant. SKU is optional; when absent one is
// suggested from the product SKU and the attribute fragments.
type CreateVariantRequest struct {
	AttributeKeys []uuid.UUID      `json:"attribute_keys" binding:"required,min=1"`
	SKU           string           `json:"sku" binding:"max=50"`
	Price         *decimal.Decimal `json:"price"`
}

// FindVariantRequest represents an attribute selection to match against
// stored variants
type FindVariantRequest struct {
	AttributeKeys []uuid.UUID `json:"attribute_keys" binding:"required,min=1"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	SKU         string            `json:"sku"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	Options     []OptionResponse  `json:"options"`
	Variants    []VariantResponse `json:"variants"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Version     int               `json:"version"`
}

// ProductListResponse represents a list item for products
type ProductListResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

// OptionResponse represents a product option in API responses
type OptionResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Required  bool                `json:"required"`
	SortOrder int                 `json:"sort_order"`
	Choices   []AttributeResponse `json:"choices"`
}

// AttributeResponse represents an option choice in API responses
type AttributeResponse struct {
	ID          uuid.UUID `json:"id"`
	OptionID    uuid.UUID `json:"option_id"`
	Name        string    `json:"name"`
	SKUFragment string    `json:"sku_fragment"`
	SortOrder   int       `json:"sort_order"`
}

// VariantResponse represents a product variant in API responses
type VariantResponse struct {
	ID         uuid.UUID           `json:"id"`
	ProductID  uuid.UUID           `json:"product_id"`
	SKU        string              `json:"sku"`
	Price      decimal.Decimal     `json:"price"`
	Weight     decimal.Decimal     `json:"weight"`
	Master     bool                `json:"master"`
	Attributes []AttributeResponse `json:"attributes"`
}

// CombinationsResponse represents a (possibly truncated) enumeration of the
// product's attribute combination space
type CombinationsResponse struct {
	Combinations [][]AttributeResponse `json:"combinations"`
	Truncated    bool                  `json:"truncated"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	options := make([]OptionResponse, len(p.Options))
	for i := range p.Options {
		options[i] = ToOptionResponse(&p.Options[i])
	}
	variants := make([]VariantResponse, len(p.Variants))
	for i := range p.Variants {
		variants[i] = ToVariantResponse(&p.Variants[i])
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Available:   p.Available,
		Options:     options,
		Variants:    variants,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// ToProductListResponse converts a domain Product to ProductListResponse
func ToProductListResponse(p *catalog.Product) ProductListResponse {
	return ProductListResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Available: p.Available,
		CreatedAt: p.CreatedAt,
	}
}

// ToOptionResponse converts a domain ProductOption to OptionResponse
func ToOptionResponse(o *catalog.ProductOption) OptionResponse {
	choices := make([]AttributeResponse, len(o.Choices))
	for i := range o.Choices {
		choices[i] = ToAttributeResponse(&o.Choices[i])
	}
	return OptionResponse{
		ID:        o.ID,
		Name:      o.Name,
		Required:  o.Required,
		SortOrder: o.SortOrder,
		Choices:   choices,
	}
}

// ToAttributeResponse converts a domain ProductAttribute to AttributeResponse
func ToAttributeResponse(a *catalog.ProductAttribute) AttributeResponse {
	return AttributeResponse{
		ID:          a.ID,
		OptionID:    a.OptionID,
		Name:        a.Name,
		SKUFragment: a.SKUFragment,
		SortOrder:   a.SortOrder,
	}
}

// ToVariantResponse converts a domain ProductVariant to VariantResponse
func ToVariantResponse(v *catalog.ProductVariant) VariantResponse {
	attributes := make([]AttributeResponse, len(v.Attributes))
	for i := range v.Attributes {
		attributes[i] = ToAttributeResponse(&v.Attributes[i])
	}
	return VariantResponse{
		ID:         v.ID,
		ProductID:  v.ProductID,
		SKU:        v.SKU,
		Price:      v.Price,
		Weight:     v.Weight,
		Master:     v.Master,
		Attributes: attributes,
	}
}
