package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/shared"
)

// Product is the aggregate root for configurable products. It owns an
// ordered list of options and the variants realized from them, including
// exactly one master variant carrying an empty attribute signature.
type Product struct {
	shared.BaseAggregateRoot
	Name        string           `gorm:"type:varchar(200);not null"`
	SKU         string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string           `gorm:"type:text"`
	Available   bool             `gorm:"not null;default:true"`
	Options     []ProductOption  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product together with its master variant.
func NewProduct(name, sku string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SKU:               strings.ToUpper(sku),
		Available:         true,
	}

	master := newMasterVariant(product.ID, product.SKU, price)
	product.Variants = []ProductVariant{*master}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// HasOptions returns true if the product has at least one option
func (p *Product) HasOptions() bool {
	return len(p.Options) > 0
}

// MasterVariant returns the variant carrying the empty attribute signature.
// Returns nil only for a product constructed outside NewProduct.
func (p *Product) MasterVariant() *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].Master {
			return &p.Variants[i]
		}
	}
	return nil
}

// Option returns the option with the given key, or nil
func (p *Product) Option(optionID uuid.UUID) *ProductOption {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return &p.Options[i]
		}
	}
	return nil
}

// AddOption appends a new option axis. Options keep insertion order; the
// sort order is assigned from the current option count.
func (p *Product) AddOption(name string, required bool) (*ProductOption, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_OPTION", "Option name cannot be empty")
	}
	for i := range p.Options {
		if strings.EqualFold(p.Options[i].Name, name) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product already has an option with this name")
		}
	}

	option := NewProductOption(p.ID, name, required, len(p.Options))
	p.Options = append(p.Options, *option)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductOptionAddedEvent(p, option))

	return &p.Options[len(p.Options)-1], nil
}

// AddChoice appends a choice to one of the product's options
func (p *Product) AddChoice(optionID uuid.UUID, name, skuFragment string) (*ProductAttribute, error) {
	option := p.Option(optionID)
	if option == nil {
		return nil, shared.ErrNotFound
	}

	choice, err := option.AddChoice(name, skuFragment)
	if err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return choice, nil
}

// AddVariant realizes one attribute combination as a stored variant.
// Every attribute must belong to one of the product's options, the set must
// cover each option at most once, and no existing variant may share the
// same attribute signature.
func (p *Product) AddVariant(attributes []ProductAttribute, sku string, price decimal.Decimal) (*ProductVariant, error) {
	if len(attributes) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "A variant requires at least one attribute")
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	seenOptions := make(map[uuid.UUID]bool, len(attributes))
	for _, attr := range attributes {
		option := p.Option(attr.OptionID)
		if option == nil || option.Choice(attr.ID) == nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Attribute does not belong to this product")
		}
		if seenOptions[attr.OptionID] {
			return nil, shared.NewDomainError("INVALID_INPUT", "A variant cannot carry two choices of the same option")
		}
		seenOptions[attr.OptionID] = true
	}

	signature := attributeKeySet(attributes)
	for i := range p.Variants {
		if p.Variants[i].MatchesSignature(signature) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A variant with this attribute combination already exists")
		}
	}

	variant := NewProductVariant(p.ID, attributes, strings.ToUpper(sku), price)
	p.Variants = append(p.Variants, *variant)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductVariantAddedEvent(p, variant))

	return &p.Variants[len(p.Variants)-1], nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetAvailable toggles storefront availability
func (p *Product) SetAvailable(available bool) {
	p.Available = available
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// validateSKU validates a product or variant SKU
func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
