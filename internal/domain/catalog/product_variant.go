package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/shared"
)

// ProductVariant is one purchasable configuration of a product, identified
// within its product by its attribute signature. The master variant carries
// an empty signature and represents the product when it has no options.
type ProductVariant struct {
	shared.BaseEntity
	ProductID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	SKU         string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	Price       decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	CostOfGoods decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Weight      decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Master      bool               `gorm:"not null;default:false"`
	Attributes  []ProductAttribute `gorm:"many2many:variant_attributes"`
	Inventories []CatalogInventory `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductVariant) TableName() string {
	return "product_variants"
}

// NewProductVariant creates a variant for the given attribute combination
func NewProductVariant(productID uuid.UUID, attributes []ProductAttribute, sku string, price decimal.Decimal) *ProductVariant {
	return &ProductVariant{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		SKU:        sku,
		Price:      price,
		Attributes: attributes,
	}
}

// newMasterVariant creates the empty-signature variant owned by every product
func newMasterVariant(productID uuid.UUID, sku string, price decimal.Decimal) *ProductVariant {
	v := NewProductVariant(productID, nil, sku, price)
	v.Master = true
	return v
}

// AttributeKeys returns the variant's attribute signature as a key set
func (v *ProductVariant) AttributeKeys() map[uuid.UUID]bool {
	return attributeKeySet(v.Attributes)
}

// MatchesSignature reports whether the variant's attribute signature equals
// the given key set: same cardinality and same members, order-independent.
func (v *ProductVariant) MatchesSignature(keys map[uuid.UUID]bool) bool {
	if len(v.Attributes) != len(keys) {
		return false
	}
	for i := range v.Attributes {
		if !keys[v.Attributes[i].ID] {
			return false
		}
	}
	return true
}

// SetPricing updates the variant's price and cost fields
func (v *ProductVariant) SetPricing(price, costOfGoods decimal.Decimal) error {
	if price.IsNegative() || costOfGoods.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Pricing fields cannot be negative")
	}
	v.Price = price
	v.CostOfGoods = costOfGoods
	v.UpdatedAt = time.Now()
	return nil
}

// SetWeight updates the variant's shipping weight
func (v *ProductVariant) SetWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return shared.NewDomainError("INVALID_WEIGHT", "Weight cannot be negative")
	}
	v.Weight = weight
	v.UpdatedAt = time.Now()
	return nil
}

// attributeKeySet builds a key set from an attribute list
func attributeKeySet(attributes []ProductAttribute) map[uuid.UUID]bool {
	keys := make(map[uuid.UUID]bool, len(attributes))
	for i := range attributes {
		keys[attributes[i].ID] = true
	}
	return keys
}

// CatalogInventory associates a variant with one warehouse catalog's stock
// record. At most one record exists per (catalog, variant) pair.
type CatalogInventory struct {
	CatalogID uuid.UUID `gorm:"type:uuid;primaryKey"`
	VariantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Count     int       `gorm:"not null;default:0"`
	LowCount  int       `gorm:"not null;default:0"`
	Location  string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (CatalogInventory) TableName() string {
	return "catalog_inventories"
}
