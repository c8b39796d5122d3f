package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/provider"
	"github.com/storekit/backend/internal/domain/shipping"
	"go.uber.org/zap"
)

// ProviderResolver resolves capability providers by key. Satisfied by the
// infrastructure provider registry.
type ProviderResolver interface {
	ResolveByKey(key string) (provider.Provider, error)
}

// ShipMethodService manages the catalog of rate-table shipping methods
// scoped to ship countries and their configured gateway providers.
type ShipMethodService struct {
	countryRepo shipping.ShipCountryRepository
	methodRepo  shipping.ShipMethodRepository
	registry    ProviderResolver
	logger      *zap.Logger
}

// NewShipMethodService creates a new ShipMethodService
func NewShipMethodService(
	countryRepo shipping.ShipCountryRepository,
	methodRepo shipping.ShipMethodRepository,
	registry ProviderResolver,
	logger *zap.Logger,
) *ShipMethodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShipMethodService{
		countryRepo: countryRepo,
		methodRepo:  methodRepo,
		registry:    registry,
		logger:      logger,
	}
}

// CreateShipCountry registers a destination country
func (s *ShipMethodService) CreateShipCountry(ctx context.Context, req CreateShipCountryRequest) (*ShipCountryResponse, error) {
	country, err := shipping.NewShipCountry(req.CountryCode, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}

	response := ToShipCountryResponse(country)
	return &response, nil
}

// GetShipCountry retrieves a ship country by ID
func (s *ShipMethodService) GetShipCountry(ctx context.Context, shipCountryID uuid.UUID) (*ShipCountryResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, shipCountryID)
	if err != nil {
		return nil, err
	}

	response := ToShipCountryResponse(country)
	return &response, nil
}

// ListShipCountries retrieves all ship countries
func (s *ShipMethodService) ListShipCountries(ctx context.Context) ([]ShipCountryResponse, error) {
	countries, err := s.countryRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]ShipCountryResponse, len(countries))
	for i := range countries {
		responses[i] = ToShipCountryResponse(&countries[i])
	}
	return responses, nil
}

// ConfigureProvider configures a gateway provider for a ship country. The
// key must resolve to a registered shipping provider.
func (s *ShipMethodService) ConfigureProvider(ctx context.Context, shipCountryID uuid.UUID, req ConfigureProviderRequest) (*ShipCountryResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, shipCountryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.registry.ResolveByKey(req.ProviderKey); err != nil {
		return nil, err
	}

	country.ConfigureProvider(req.ProviderKey)
	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}

	response := ToShipCountryResponse(country)
	return &response, nil
}

// ListProvidersForCountry lists the country's configured gateway providers,
// filtered to those carrying the rate-table capability. An unknown ship
// country fails with not found.
func (s *ShipMethodService) ListProvidersForCountry(ctx context.Context, shipCountryID uuid.UUID) ([]ProviderResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, shipCountryID)
	if err != nil {
		return nil, err
	}

	responses := []ProviderResponse{}
	for _, key := range country.ProviderKeys {
		gateway, err := s.resolveRateTableProvider(key)
		if err != nil {
			s.logger.Debug("configured provider key did not resolve to a rate-table gateway",
				zap.String("ship_country_id", shipCountryID.String()),
				zap.String("provider_key", key),
				zap.Error(err))
			continue
		}
		responses = append(responses, ProviderResponse{
			Key:  gateway.Key(),
			Kind: gateway.Kind().String(),
			Name: gateway.Name(),
		})
	}
	return responses, nil
}

// ListMethodsForCountry lists the rate-table methods available for a ship
// country. An unknown country, a country without a rate-table provider, and
// a provider yielding zero methods all surface as the same not-found outcome.
func (s *ShipMethodService) ListMethodsForCountry(ctx context.Context, shipCountryID uuid.UUID) ([]MethodResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, shipCountryID)
	if err != nil {
		return nil, err
	}

	var methods []shipping.RateTableShipMethod
	for _, key := range country.ProviderKeys {
		gateway, err := s.resolveRateTableProvider(key)
		if err != nil {
			continue
		}
		found, err := gateway.MethodsForCountry(ctx, shipCountryID)
		if err != nil {
			return nil, err
		}
		methods = append(methods, found...)
	}

	if len(methods) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "No shipping methods available for this country")
	}

	responses := make([]MethodResponse, len(methods))
	for i := range methods {
		responses[i] = ToMethodResponse(&methods[i])
	}
	return responses, nil
}

// CreateMethod asks the country's rate-table provider to construct a new
// method, applies the caller-supplied name and rate table, and persists it.
// Construction and persistence failures are captured as an operation-failed
// result carrying the failure message; the call never panics.
func (s *ShipMethodService) CreateMethod(ctx context.Context, shipCountryID uuid.UUID, req CreateMethodRequest) (*MethodResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, shipCountryID)
	if err != nil {
		return nil, err
	}

	gateway, err := s.firstRateTableProvider(country)
	if err != nil {
		return nil, err
	}

	method, err := gateway.CreateMethod(ctx, shipCountryID, req.Name, shipping.RateTableType(req.RateTableType))
	if err != nil {
		return nil, shared.NewOperationFailed(err.Error())
	}
	if len(req.RateTiers) > 0 {
		if err := method.ReplaceRateTable(toDomainTiers(req.RateTiers)); err != nil {
			return nil, shared.NewOperationFailed(err.Error())
		}
		if err := gateway.SaveMethod(ctx, method); err != nil {
			return nil, shared.NewOperationFailed(err.Error())
		}
	}

	response := ToMethodResponse(method)
	return &response, nil
}

// UpdateMethod replaces an existing method's rate table (and optionally its
// name) and persists through the owning provider. An unknown method key
// fails with not found; persistence failures are captured as
// operation-failed results.
func (s *ShipMethodService) UpdateMethod(ctx context.Context, methodID uuid.UUID, req UpdateMethodRequest) (*MethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, methodID)
	if err != nil {
		return nil, err
	}

	gateway, err := s.resolveRateTableProvider(method.ProviderKey)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		if err := method.Rename(req.Name); err != nil {
			return nil, shared.NewOperationFailed(err.Error())
		}
	}
	if err := method.ReplaceRateTable(toDomainTiers(req.RateTiers)); err != nil {
		return nil, shared.NewOperationFailed(err.Error())
	}
	if err := gateway.SaveMethod(ctx, method); err != nil {
		return nil, shared.NewOperationFailed(err.Error())
	}

	response := ToMethodResponse(method)
	return &response, nil
}

// DeleteMethod removes a method from its owning provider and persists the
// removal. An unknown method key fails with not found.
func (s *ShipMethodService) DeleteMethod(ctx context.Context, methodID uuid.UUID) error {
	method, err := s.methodRepo.FindByID(ctx, methodID)
	if err != nil {
		return err
	}

	gateway, err := s.resolveRateTableProvider(method.ProviderKey)
	if err != nil {
		return err
	}

	if err := gateway.DeleteMethod(ctx, methodID); err != nil {
		return shared.NewOperationFailed(err.Error())
	}
	return nil
}

// resolveRateTableProvider resolves a provider key and checks the rate-table
// capability via type assertion
func (s *ShipMethodService) resolveRateTableProvider(key string) (shipping.RateTableProvider, error) {
	resolved, err := s.registry.ResolveByKey(key)
	if err != nil {
		return nil, err
	}
	gateway, ok := resolved.(shipping.RateTableProvider)
	if !ok {
		return nil, shared.NewDomainError("NOT_FOUND", "Provider does not support rate-table methods")
	}
	return gateway, nil
}

// firstRateTableProvider returns the first configured provider of the
// country that carries the rate-table capability
func (s *ShipMethodService) firstRateTableProvider(country *shipping.ShipCountry) (shipping.RateTableProvider, error) {
	for _, key := range country.ProviderKeys {
		gateway, err := s.resolveRateTableProvider(key)
		if err != nil {
			continue
		}
		return gateway, nil
	}
	return nil, shared.NewDomainError("NOT_FOUND", "No rate-table provider is configured for this country")
}
