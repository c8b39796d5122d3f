package shipping

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
)

// ShipCountry is a destination country a store ships to, together with the
// ordered list of gateway provider keys configured for it.
type ShipCountry struct {
	shared.BaseAggregateRoot
	CountryCode  string   `gorm:"type:varchar(2);not null;uniqueIndex"`
	Name         string   `gorm:"type:varchar(100);not null"`
	ProviderKeys []string `gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for GORM
func (ShipCountry) TableName() string {
	return "ship_countries"
}

// NewShipCountry creates a new ship country
func NewShipCountry(countryCode, name string) (*ShipCountry, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if len(code) != 2 {
		return nil, shared.NewDomainError("INVALID_COUNTRY_CODE", "Country code must be a two-letter ISO code")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Country name cannot be empty")
	}
	return &ShipCountry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CountryCode:       code,
		Name:              name,
	}, nil
}

// ConfigureProvider appends a gateway provider key, preserving order.
// Configuring an already-configured provider is a no-op.
func (c *ShipCountry) ConfigureProvider(providerKey string) {
	for _, key := range c.ProviderKeys {
		if key == providerKey {
			return
		}
	}
	c.ProviderKeys = append(c.ProviderKeys, providerKey)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// HasProvider reports whether the given provider key is configured
func (c *ShipCountry) HasProvider(providerKey string) bool {
	for _, key := range c.ProviderKeys {
		if key == providerKey {
			return true
		}
	}
	return false
}

// ShipCountryRepository defines the interface for ship country persistence
type ShipCountryRepository interface {
	// FindByID finds a ship country by its key
	FindByID(ctx context.Context, id uuid.UUID) (*ShipCountry, error)

	// FindByCountryCode finds a ship country by its ISO code
	FindByCountryCode(ctx context.Context, countryCode string) (*ShipCountry, error)

	// FindAll finds all ship countries
	FindAll(ctx context.Context, filter shared.Filter) ([]ShipCountry, error)

	// Save creates or updates a ship country
	Save(ctx context.Context, country *ShipCountry) error

	// Delete deletes a ship country
	Delete(ctx context.Context, id uuid.UUID) error
}
