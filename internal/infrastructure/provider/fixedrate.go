package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
	sharedprovider "github.com/storekit/backend/internal/domain/shared/provider"
	"github.com/storekit/backend/internal/domain/shipping"
)

// FixedRateProviderKey is the registration key of the fixed-rate gateway
const FixedRateProviderKey = "shipping.fixedrate"

// FixedRateShipProvider is a rate-table shipping gateway whose methods are
// priced from fixed weight or price breakpoints.
type FixedRateShipProvider struct {
	sharedprovider.BaseProvider
	methods shipping.ShipMethodRepository
}

// NewFixedRateShipProvider creates the fixed-rate gateway backed by the
// given method repository
func NewFixedRateShipProvider(methods shipping.ShipMethodRepository) *FixedRateShipProvider {
	return &FixedRateShipProvider{
		BaseProvider: sharedprovider.NewBaseProvider(FixedRateProviderKey, sharedprovider.KindShipping, "Fixed Rate Shipping"),
		methods:      methods,
	}
}

// MethodsForCountry lists the methods this gateway has created for a country
func (p *FixedRateShipProvider) MethodsForCountry(ctx context.Context, shipCountryID uuid.UUID) ([]shipping.RateTableShipMethod, error) {
	return p.methods.FindByCountryAndProvider(ctx, shipCountryID, p.Key())
}

// CreateMethod creates and persists a new rate-table method for a country
func (p *FixedRateShipProvider) CreateMethod(ctx context.Context, shipCountryID uuid.UUID, name string, rateTableType shipping.RateTableType) (*shipping.RateTableShipMethod, error) {
	method, err := shipping.NewRateTableShipMethod(shipCountryID, p.Key(), rateTableType)
	if err != nil {
		return nil, err
	}
	if err := method.Rename(name); err != nil {
		return nil, err
	}
	if err := p.methods.Save(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// SaveMethod persists changes to an existing method owned by this gateway
func (p *FixedRateShipProvider) SaveMethod(ctx context.Context, method *shipping.RateTableShipMethod) error {
	if method.ProviderKey != p.Key() {
		return fmt.Errorf("%w: method '%s' is not owned by provider '%s'", shared.ErrInvalidState, method.ID, p.Key())
	}
	return p.methods.Save(ctx, method)
}

// DeleteMethod removes a method this gateway owns
func (p *FixedRateShipProvider) DeleteMethod(ctx context.Context, methodID uuid.UUID) error {
	method, err := p.methods.FindByID(ctx, methodID)
	if err != nil {
		return err
	}
	if method.ProviderKey != p.Key() {
		return fmt.Errorf("%w: method '%s' is not owned by provider '%s'", shared.ErrInvalidState, methodID, p.Key())
	}
	return p.methods.Delete(ctx, methodID)
}

var _ shipping.RateTableProvider = (*FixedRateShipProvider)(nil)
