package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared/provider"
)

// GatewayProvider is a shipping gateway registered with the provider
// registry. Concrete gateways may additionally implement RateTableProvider;
// callers discover the extension by type assertion.
type GatewayProvider interface {
	provider.Provider
}

// RateTableProvider is a gateway provider whose methods are priced from
// rate tables it owns.
type RateTableProvider interface {
	GatewayProvider

	// MethodsForCountry lists the methods this provider has created for a country
	MethodsForCountry(ctx context.Context, shipCountryID uuid.UUID) ([]RateTableShipMethod, error)

	// CreateMethod creates and persists a new method for a country
	CreateMethod(ctx context.Context, shipCountryID uuid.UUID, name string, rateTableType RateTableType) (*RateTableShipMethod, error)

	// SaveMethod persists changes to an existing method
	SaveMethod(ctx context.Context, method *RateTableShipMethod) error

	// DeleteMethod removes a method this provider owns
	DeleteMethod(ctx context.Context, methodID uuid.UUID) error
}
