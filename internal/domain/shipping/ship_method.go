package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/shared"
)

// RateTableType enumerates how a rate table's tiers are keyed
type RateTableType string

const (
	RateTableByWeight RateTableType = "weight"
	RateTableByPrice  RateTableType = "price"
)

// IsValid returns true if the rate table type is known
func (t RateTableType) IsValid() bool {
	switch t {
	case RateTableByWeight, RateTableByPrice:
		return true
	default:
		return false
	}
}

// RateTier is one breakpoint row of a rate table. The tier structure is
// owned by the provider that created the method; the registry and catalog
// treat the table as opaque.
type RateTier struct {
	RangeLow  decimal.Decimal `json:"range_low"`
	RangeHigh decimal.Decimal `json:"range_high"`
	Rate      decimal.Decimal `json:"rate"`
}

// RateTableShipMethod is a shipping method priced from a table of
// breakpoints, owned by its (ship country, provider) pair.
type RateTableShipMethod struct {
	shared.BaseAggregateRoot
	ShipCountryID uuid.UUID     `gorm:"type:uuid;not null;index"`
	ProviderKey   string        `gorm:"type:varchar(100);not null;index"`
	Name          string        `gorm:"type:varchar(100);not null"`
	RateTableType RateTableType `gorm:"type:varchar(20);not null"`
	RateTiers     []RateTier    `gorm:"type:jsonb;serializer:json"`
	ServiceCode   string        `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (RateTableShipMethod) TableName() string {
	return "rate_table_ship_methods"
}

// NewRateTableShipMethod creates a method of the given rate table type
// scoped to a ship country and provider
func NewRateTableShipMethod(shipCountryID uuid.UUID, providerKey string, rateTableType RateTableType) (*RateTableShipMethod, error) {
	if !rateTableType.IsValid() {
		return nil, shared.NewDomainError("INVALID_RATE_TABLE_TYPE", "Unknown rate table type")
	}
	if providerKey == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Provider key cannot be empty")
	}
	return &RateTableShipMethod{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ShipCountryID:     shipCountryID,
		ProviderKey:       providerKey,
		RateTableType:     rateTableType,
	}, nil
}

// Rename applies a caller-supplied display name
func (m *RateTableShipMethod) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Method name cannot be empty")
	}
	m.Name = name
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}

// ReplaceRateTable swaps in a new ordered tier table. Tiers must be
// non-negative and ordered by their low bound.
func (m *RateTableShipMethod) ReplaceRateTable(tiers []RateTier) error {
	for i, tier := range tiers {
		if tier.RangeLow.IsNegative() || tier.RangeHigh.IsNegative() || tier.Rate.IsNegative() {
			return shared.NewDomainError("INVALID_RATE_TIER", "Rate tier values cannot be negative")
		}
		if tier.RangeHigh.LessThan(tier.RangeLow) {
			return shared.NewDomainError("INVALID_RATE_TIER", "Rate tier high bound cannot be below its low bound")
		}
		if i > 0 && tier.RangeLow.LessThan(tiers[i-1].RangeLow) {
			return shared.NewDomainError("INVALID_RATE_TIER", "Rate tiers must be ordered by low bound")
		}
	}
	m.RateTiers = tiers
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}

// ShipMethodRepository defines the interface for rate-table method persistence
type ShipMethodRepository interface {
	// FindByID finds a method by its key
	FindByID(ctx context.Context, id uuid.UUID) (*RateTableShipMethod, error)

	// FindByCountryAndProvider finds all methods owned by a (country, provider) pair
	FindByCountryAndProvider(ctx context.Context, shipCountryID uuid.UUID, providerKey string) ([]RateTableShipMethod, error)

	// Save creates or updates a method
	Save(ctx context.Context, method *RateTableShipMethod) error

	// Delete deletes a method
	Delete(ctx context.Context, id uuid.UUID) error
}
