package shipping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/shipping"
)

// CreateShipCountryRequest represents a request to register a ship country
type CreateShipCountryRequest struct {
	CountryCode string `json:"country_code" binding:"required,len=2"`
	Name        string `json:"name" binding:"required,min=1,max=100"`
}

// ConfigureProviderRequest represents a request to configure a gateway
// provider for a ship country
type ConfigureProviderRequest struct {
	ProviderKey string `json:"provider_key" binding:"required,min=1,max=100"`
}

// RateTierPayload represents one rate table breakpoint in requests
type RateTierPayload struct {
	RangeLow  decimal.Decimal `json:"range_low"`
	RangeHigh decimal.Decimal `json:"range_high"`
	Rate      decimal.Decimal `json:"rate"`
}

// CreateMethodRequest represents a request to create a rate-table method
type CreateMethodRequest struct {
	RateTableType string            `json:"rate_table_type" binding:"required,ratetabletype"`
	Name          string            `json:"name" binding:"required,min=1,max=100"`
	RateTiers     []RateTierPayload `json:"rate_tiers"`
}

// UpdateMethodRequest represents a request to replace a method's rate table
type UpdateMethodRequest struct {
	Name      string            `json:"name" binding:"omitempty,min=1,max=100"`
	RateTiers []RateTierPayload `json:"rate_tiers" binding:"required"`
}

// ShipCountryResponse represents a ship country in API responses
type ShipCountryResponse struct {
	ID           uuid.UUID `json:"id"`
	CountryCode  string    `json:"country_code"`
	Name         string    `json:"name"`
	ProviderKeys []string  `json:"provider_keys"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProviderResponse represents a gateway provider in API responses
type ProviderResponse struct {
	Key  string `json:"key"`
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// MethodResponse represents a rate-table shipping method in API responses
type MethodResponse struct {
	ID            uuid.UUID         `json:"id"`
	ShipCountryID uuid.UUID         `json:"ship_country_id"`
	ProviderKey   string            `json:"provider_key"`
	Name          string            `json:"name"`
	RateTableType string            `json:"rate_table_type"`
	RateTiers     []RateTierPayload `json:"rate_tiers"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ToShipCountryResponse converts a domain ShipCountry to ShipCountryResponse
func ToShipCountryResponse(c *shipping.ShipCountry) ShipCountryResponse {
	keys := c.ProviderKeys
	if keys == nil {
		keys = []string{}
	}
	return ShipCountryResponse{
		ID:           c.ID,
		CountryCode:  c.CountryCode,
		Name:         c.Name,
		ProviderKeys: keys,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToMethodResponse converts a domain RateTableShipMethod to MethodResponse
func ToMethodResponse(m *shipping.RateTableShipMethod) MethodResponse {
	tiers := make([]RateTierPayload, len(m.RateTiers))
	for i, tier := range m.RateTiers {
		tiers[i] = RateTierPayload{
			RangeLow:  tier.RangeLow,
			RangeHigh: tier.RangeHigh,
			Rate:      tier.Rate,
		}
	}
	return MethodResponse{
		ID:            m.ID,
		ShipCountryID: m.ShipCountryID,
		ProviderKey:   m.ProviderKey,
		Name:          m.Name,
		RateTableType: string(m.RateTableType),
		RateTiers:     tiers,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// toDomainTiers converts request tier payloads to domain rate tiers
func toDomainTiers(payloads []RateTierPayload) []shipping.RateTier {
	tiers := make([]shipping.RateTier, len(payloads))
	for i, p := range payloads {
		tiers[i] = shipping.RateTier{
			RangeLow:  p.RangeLow,
			RangeHigh: p.RangeHigh,
			Rate:      p.Rate,
		}
	}
	return tiers
}
