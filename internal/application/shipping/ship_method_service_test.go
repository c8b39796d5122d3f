package shipping

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shared/provider"
	"github.com/storekit/backend/internal/domain/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockShipCountryRepository is a mock implementation of ShipCountryRepository
type MockShipCountryRepository struct {
	mock.Mock
}

func (m *MockShipCountryRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.ShipCountry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.ShipCountry), args.Error(1)
}

func (m *MockShipCountryRepository) FindByCountryCode(ctx context.Context, countryCode string) (*shipping.ShipCountry, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.ShipCountry), args.Error(1)
}

func (m *MockShipCountryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.ShipCountry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shipping.ShipCountry), args.Error(1)
}

func (m *MockShipCountryRepository) Save(ctx context.Context, country *shipping.ShipCountry) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockShipCountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShipMethodRepository is a mock implementation of ShipMethodRepository
type MockShipMethodRepository struct {
	mock.Mock
}

func (m *MockShipMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.RateTableShipMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.RateTableShipMethod), args.Error(1)
}

func (m *MockShipMethodRepository) FindByCountryAndProvider(ctx context.Context, shipCountryID uuid.UUID, providerKey string) ([]shipping.RateTableShipMethod, error) {
	args := m.Called(ctx, shipCountryID, providerKey)
	return args.Get(0).([]shipping.RateTableShipMethod), args.Error(1)
}

func (m *MockShipMethodRepository) Save(ctx context.Context, method *shipping.RateTableShipMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockShipMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProviderResolver is a mock implementation of ProviderResolver
type MockProviderResolver struct {
	mock.Mock
}

func (m *MockProviderResolver) ResolveByKey(key string) (provider.Provider, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(provider.Provider), args.Error(1)
}

// fakeRateTableProvider keeps methods in memory and can be told to fail
type fakeRateTableProvider struct {
	provider.BaseProvider
	methods  map[uuid.UUID]*shipping.RateTableShipMethod
	failWith error
	deleted  []uuid.UUID
}

func newFakeRateTableProvider(key string) *fakeRateTableProvider {
	return &fakeRateTableProvider{
		BaseProvider: provider.NewBaseProvider(key, provider.KindShipping, "Fake Gateway"),
		methods:      make(map[uuid.UUID]*shipping.RateTableShipMethod),
	}
}

func (p *fakeRateTableProvider) MethodsForCountry(_ context.Context, shipCountryID uuid.UUID) ([]shipping.RateTableShipMethod, error) {
	var found []shipping.RateTableShipMethod
	for _, method := range p.methods {
		if method.ShipCountryID == shipCountryID {
			found = append(found, *method)
		}
	}
	return found, nil
}

func (p *fakeRateTableProvider) CreateMethod(_ context.Context, shipCountryID uuid.UUID, name string, rateTableType shipping.RateTableType) (*shipping.RateTableShipMethod, error) {
	if p.failWith != nil {
		return nil, p.failWith
	}
	method, err := shipping.NewRateTableShipMethod(shipCountryID, p.Key(), rateTableType)
	if err != nil {
		return nil, err
	}
	if err := method.Rename(name); err != nil {
		return nil, err
	}
	p.methods[method.ID] = method
	return method, nil
}

func (p *fakeRateTableProvider) SaveMethod(_ context.Context, method *shipping.RateTableShipMethod) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.methods[method.ID] = method
	return nil
}

func (p *fakeRateTableProvider) DeleteMethod(_ context.Context, methodID uuid.UUID) error {
	if p.failWith != nil {
		return p.failWith
	}
	delete(p.methods, methodID)
	p.deleted = append(p.deleted, methodID)
	return nil
}

// plainShipProvider is a gateway without the rate-table capability
type plainShipProvider struct {
	provider.BaseProvider
}

func newTestShipCountry(t *testing.T, providerKeys ...string) *shipping.ShipCountry {
	t.Helper()
	country, err := shipping.NewShipCountry("US", "United States")
	require.NoError(t, err)
	for _, key := range providerKeys {
		country.ConfigureProvider(key)
	}
	return country
}

func newTestService() (*ShipMethodService, *MockShipCountryRepository, *MockShipMethodRepository, *MockProviderResolver) {
	mockCountries := new(MockShipCountryRepository)
	mockMethods := new(MockShipMethodRepository)
	mockResolver := new(MockProviderResolver)
	service := NewShipMethodService(mockCountries, mockMethods, mockResolver, zap.NewNop())
	return service, mockCountries, mockMethods, mockResolver
}

func TestShipMethodService_ListProvidersForCountry(t *testing.T) {
	service, mockCountries, _, mockResolver := newTestService()
	ctx := context.Background()

	country := newTestShipCountry(t, "shipping.fixedrate", "shipping.plain")
	fake := newFakeRateTableProvider("shipping.fixedrate")
	plain := &plainShipProvider{BaseProvider: provider.NewBaseProvider("shipping.plain", provider.KindShipping, "Plain")}

	mockCountries.On("FindByID", ctx, country.ID).Return(country, nil)
	mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)
	mockResolver.On("ResolveByKey", "shipping.plain").Return(plain, nil)

	result, err := service.ListProvidersForCountry(ctx, country.ID)

	assert.NoError(t, err)
	require.Len(t, result, 1, "providers without the rate-table capability are filtered out")
	assert.Equal(t, "shipping.fixedrate", result[0].Key)
}

func TestShipMethodService_ListProvidersForCountry_UnknownCountry(t *testing.T) {
	service, mockCountries, _, _ := newTestService()
	ctx := context.Background()
	countryID := uuid.New()

	mockCountries.On("FindByID", ctx, countryID).Return(nil, shared.ErrNotFound)

	result, err := service.ListProvidersForCountry(ctx, countryID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Nil(t, result)
}

func TestShipMethodService_ListMethodsForCountry(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the provider's methods", func(t *testing.T) {
		service, mockCountries, _, mockResolver := newTestService()
		country := newTestShipCountry(t, "shipping.fixedrate")
		fake := newFakeRateTableProvider("shipping.fixedrate")
		_, err := fake.CreateMethod(ctx, country.ID, "Ground", shipping.RateTableByWeight)
		require.NoError(t, err)

		mockCountries.On("FindByID", ctx, country.ID).Return(country, nil)
		mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)

		result, err := service.ListMethodsForCountry(ctx, country.ID)

		assert.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Ground", result[0].Name)
	})

	t.Run("unknown country is not found", func(t *testing.T) {
		service, mockCountries, _, _ := newTestService()
		countryID := uuid.New()
		mockCountries.On("FindByID", ctx, countryID).Return(nil, shared.ErrNotFound)

		_, err := service.ListMethodsForCountry(ctx, countryID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("no configured provider is not found", func(t *testing.T) {
		service, mockCountries, _, _ := newTestService()
		country := newTestShipCountry(t)
		mockCountries.On("FindByID", ctx, country.ID).Return(country, nil)

		_, err := service.ListMethodsForCountry(ctx, country.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("zero methods is not found", func(t *testing.T) {
		service, mockCountries, _, mockResolver := newTestService()
		country := newTestShipCountry(t, "shipping.fixedrate")
		fake := newFakeRateTableProvider("shipping.fixedrate")

		mockCountries.On("FindByID", ctx, country.ID).Return(country, nil)
		mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)

		_, err := service.ListMethodsForCountry(ctx, country.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestShipMethodService_CreateMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("creates through the provider", func(t *testing.T) {
		service, mockCountries, _, mockResolver := newTestService()
		country := newTestShipCountry(t, "shipping.fixedrate")
		fake := newFakeRateTableProvider("shipping.fixedrate")

		mockCountries.On("FindByID", ctx, country.ID).Return(country, nil)
		mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)

		result, err := service.CreateMethod(ctx, country.ID, CreateMethodRequest{
			RateTableType: "weight",
			Name:          "Ground",
			RateTiers: []RateTierPayload{
				{RangeLow: decimal.Zero, RangeHigh: decimal.NewFromInt(5), Rate: decimal.NewFromInt(10)},
			},
		})

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Ground", result.Name)
		assert.Equal(t, "weight", result.RateTableType)
		require.Len(t, result.RateTiers, 1)
	})

	t.Run("provider failure becomes operation failed with message", func(t *testing.T) {
		service, mockCountries, _, mockResolver := newTestService()
		country := newTestShipCountry(t, "shipping.fixedrate")
		fake := newFakeRateTableProvider("shipping.fixedrate")
		fake.failWith = fmt.Errorf("gateway storage offline")

		mockCountries.On("FindByID", ctx, country.ID).Return(country, nil)
		mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)

		result, err := service.CreateMethod(ctx, country.ID, CreateMethodRequest{
			RateTableType: "weight",
			Name:          "Ground",
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "OPERATION_FAILED", domainErr.Code)
		assert.Equal(t, "gateway storage offline", domainErr.Message)
	})

	t.Run("no rate-table provider is not found", func(t *testing.T) {
		service, mockCountries, _, _ := newTestService()
		country := newTestShipCountry(t)
		mockCountries.On("FindByID", ctx, country.ID).Return(country, nil)

		_, err := service.CreateMethod(ctx, country.ID, CreateMethodRequest{RateTableType: "weight", Name: "Ground"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestShipMethodService_UpdateMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the rate table", func(t *testing.T) {
		service, _, mockMethods, mockResolver := newTestService()
		fake := newFakeRateTableProvider("shipping.fixedrate")
		method, err := fake.CreateMethod(ctx, uuid.New(), "Ground", shipping.RateTableByWeight)
		require.NoError(t, err)

		mockMethods.On("FindByID", ctx, method.ID).Return(method, nil)
		mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)

		result, err := service.UpdateMethod(ctx, method.ID, UpdateMethodRequest{
			RateTiers: []RateTierPayload{
				{RangeLow: decimal.Zero, RangeHigh: decimal.NewFromInt(2), Rate: decimal.NewFromInt(4)},
				{RangeLow: decimal.NewFromInt(2), RangeHigh: decimal.NewFromInt(10), Rate: decimal.NewFromInt(8)},
			},
		})

		assert.NoError(t, err)
		require.NotNil(t, result)
		require.Len(t, result.RateTiers, 2)
		assert.True(t, result.RateTiers[1].Rate.Equal(decimal.NewFromInt(8)))
	})

	t.Run("unknown method is not found", func(t *testing.T) {
		service, _, mockMethods, _ := newTestService()
		methodID := uuid.New()
		mockMethods.On("FindByID", ctx, methodID).Return(nil, shared.ErrNotFound)

		_, err := service.UpdateMethod(ctx, methodID, UpdateMethodRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("invalid tier table becomes operation failed with message", func(t *testing.T) {
		service, _, mockMethods, mockResolver := newTestService()
		fake := newFakeRateTableProvider("shipping.fixedrate")
		method, err := fake.CreateMethod(ctx, uuid.New(), "Ground", shipping.RateTableByWeight)
		require.NoError(t, err)

		mockMethods.On("FindByID", ctx, method.ID).Return(method, nil)
		mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)

		_, err = service.UpdateMethod(ctx, method.ID, UpdateMethodRequest{
			RateTiers: []RateTierPayload{
				{RangeLow: decimal.NewFromInt(5), RangeHigh: decimal.NewFromInt(2), Rate: decimal.NewFromInt(4)},
			},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "OPERATION_FAILED", domainErr.Code)
		assert.NotEmpty(t, domainErr.Message)
	})
}

func TestShipMethodService_DeleteMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("removes through the provider", func(t *testing.T) {
		service, _, mockMethods, mockResolver := newTestService()
		fake := newFakeRateTableProvider("shipping.fixedrate")
		method, err := fake.CreateMethod(ctx, uuid.New(), "Ground", shipping.RateTableByWeight)
		require.NoError(t, err)

		mockMethods.On("FindByID", ctx, method.ID).Return(method, nil)
		mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)

		err = service.DeleteMethod(ctx, method.ID)

		assert.NoError(t, err)
		require.Len(t, fake.deleted, 1)
		assert.Equal(t, method.ID, fake.deleted[0])
	})

	t.Run("unknown method is not found", func(t *testing.T) {
		service, _, mockMethods, _ := newTestService()
		methodID := uuid.New()
		mockMethods.On("FindByID", ctx, methodID).Return(nil, shared.ErrNotFound)

		err := service.DeleteMethod(ctx, methodID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("provider failure becomes operation failed", func(t *testing.T) {
		service, _, mockMethods, mockResolver := newTestService()
		fake := newFakeRateTableProvider("shipping.fixedrate")
		method, err := fake.CreateMethod(ctx, uuid.New(), "Ground", shipping.RateTableByWeight)
		require.NoError(t, err)
		fake.failWith = fmt.Errorf("gateway storage offline")

		mockMethods.On("FindByID", ctx, method.ID).Return(method, nil)
		mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)

		err = service.DeleteMethod(ctx, method.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "OPERATION_FAILED", domainErr.Code)
		assert.Equal(t, "gateway storage offline", domainErr.Message)
	})
}

func TestShipMethodService_ConfigureProvider(t *testing.T) {
	service, mockCountries, _, mockResolver := newTestService()
	ctx := context.Background()

	country := newTestShipCountry(t)
	fake := newFakeRateTableProvider("shipping.fixedrate")

	mockCountries.On("FindByID", ctx, country.ID).Return(country, nil)
	mockCountries.On("Save", ctx, country).Return(nil)
	mockResolver.On("ResolveByKey", "shipping.fixedrate").Return(fake, nil)

	result, err := service.ConfigureProvider(ctx, country.ID, ConfigureProviderRequest{ProviderKey: "shipping.fixedrate"})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []string{"shipping.fixedrate"}, result.ProviderKeys)

	// Configuring the same key twice keeps a single entry
	result, err = service.ConfigureProvider(ctx, country.ID, ConfigureProviderRequest{ProviderKey: "shipping.fixedrate"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"shipping.fixedrate"}, result.ProviderKeys)
}
