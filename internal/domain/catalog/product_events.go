package catalog

import (
	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductCreated      = "ProductCreated"
	EventTypeProductUpdated      = "ProductUpdated"
	EventTypeProductOptionAdded  = "ProductOptionAdded"
	EventTypeProductVariantAdded = "ProductVariantAdded"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		SKU:             product.SKU,
		Name:            product.Name,
	}
}

// ProductUpdatedEvent is published when a product is updated
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID   uuid.UUID `json:"product_id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		SKU:             product.SKU,
		Name:            product.Name,
		Description:     product.Description,
	}
}

// ProductOptionAddedEvent is published when an option axis is added
type ProductOptionAddedEvent struct {
	shared.BaseDomainEvent
	ProductID  uuid.UUID `json:"product_id"`
	OptionID   uuid.UUID `json:"option_id"`
	OptionName string    `json:"option_name"`
}

// NewProductOptionAddedEvent creates a new ProductOptionAddedEvent
func NewProductOptionAddedEvent(product *Product, option *ProductOption) *ProductOptionAddedEvent {
	return &ProductOptionAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductOptionAdded, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		OptionID:        option.ID,
		OptionName:      option.Name,
	}
}

// ProductVariantAddedEvent is published when a combination is realized as a variant
type ProductVariantAddedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	VariantID uuid.UUID `json:"variant_id"`
	SKU       string    `json:"sku"`
}

// NewProductVariantAddedEvent creates a new ProductVariantAddedEvent
func NewProductVariantAddedEvent(product *Product, variant *ProductVariant) *ProductVariantAddedEvent {
	return &ProductVariantAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductVariantAdded, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		VariantID:       variant.ID,
		SKU:             variant.SKU,
	}
}
