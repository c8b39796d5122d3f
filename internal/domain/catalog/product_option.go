package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
)

// ProductOption is one named axis of product configuration (e.g. "Color").
// Choices keep insertion order; that order drives SKU suggestion.
type ProductOption struct {
	shared.BaseEntity
	ProductID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Name      string             `gorm:"type:varchar(100);not null"`
	Required  bool               `gorm:"not null;default:true"`
	SortOrder int                `gorm:"not null;default:0"`
	Choices   []ProductAttribute `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductOption) TableName() string {
	return "product_options"
}

// NewProductOption creates a new option for a product
func NewProductOption(productID uuid.UUID, name string, required bool, sortOrder int) *ProductOption {
	return &ProductOption{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Name:       name,
		Required:   required,
		SortOrder:  sortOrder,
	}
}

// Choice returns the choice with the given key, or nil
func (o *ProductOption) Choice(attributeID uuid.UUID) *ProductAttribute {
	for i := range o.Choices {
		if o.Choices[i].ID == attributeID {
			return &o.Choices[i]
		}
	}
	return nil
}

// AddChoice appends a selectable value to the option
func (o *ProductOption) AddChoice(name, skuFragment string) (*ProductAttribute, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CHOICE", "Choice name cannot be empty")
	}
	for i := range o.Choices {
		if strings.EqualFold(o.Choices[i].Name, name) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Option already has a choice with this name")
		}
	}

	choice := ProductAttribute{
		BaseEntity:  shared.NewBaseEntity(),
		OptionID:    o.ID,
		Name:        name,
		SKUFragment: skuFragment,
		SortOrder:   len(o.Choices),
	}
	o.Choices = append(o.Choices, choice)

	return &o.Choices[len(o.Choices)-1], nil
}

// ProductAttribute is one selectable value within an option (e.g. "Red").
// A variant's attribute signature is the set of attribute keys it carries.
type ProductAttribute struct {
	shared.BaseEntity
	OptionID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	SKUFragment string    `gorm:"type:varchar(20)"`
	SortOrder   int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductAttribute) TableName() string {
	return "product_attributes"
}
