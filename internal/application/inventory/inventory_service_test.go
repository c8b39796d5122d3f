package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/inventory"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogRepository is a mock implementation of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.WarehouseCatalog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.WarehouseCatalog), args.Error(1)
}

func (m *MockCatalogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.WarehouseCatalog, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.WarehouseCatalog), args.Error(1)
}

func (m *MockCatalogRepository) Save(ctx context.Context, catalog *inventory.WarehouseCatalog) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVariantRepository is a mock implementation of VariantRepository
type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) Save(ctx context.Context, variant *catalog.ProductVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func newTestService() (*InventoryService, *MockCatalogRepository, *MockVariantRepository) {
	mockCatalogs := new(MockCatalogRepository)
	mockVariants := new(MockVariantRepository)
	service := NewInventoryService(mockCatalogs, mockVariants, inventory.NewLedger())
	return service, mockCatalogs, mockVariants
}

func newTestVariant() *catalog.ProductVariant {
	return catalog.NewProductVariant(uuid.New(), nil, "SHIRT-RD-S", decimal.NewFromInt(22))
}

func newTestCatalog(t *testing.T) *inventory.WarehouseCatalog {
	t.Helper()
	warehouseCatalog, err := inventory.NewWarehouseCatalog(uuid.New(), "Main Catalog")
	require.NoError(t, err)
	return warehouseCatalog
}

func TestInventoryService_CreateCatalog(t *testing.T) {
	service, mockCatalogs, _ := newTestService()
	ctx := context.Background()

	mockCatalogs.On("Save", ctx, mock.AnythingOfType("*inventory.WarehouseCatalog")).Return(nil)

	result, err := service.CreateCatalog(ctx, CreateCatalogRequest{
		WarehouseID: uuid.New(),
		Name:        "Main Catalog",
	})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Main Catalog", result.Name)
	mockCatalogs.AssertExpectations(t)
}

func TestInventoryService_Associate_CreatesRecord(t *testing.T) {
	service, mockCatalogs, mockVariants := newTestService()
	ctx := context.Background()

	variant := newTestVariant()
	warehouseCatalog := newTestCatalog(t)

	mockVariants.On("FindByID", ctx, variant.ID).Return(variant, nil)
	mockCatalogs.On("FindByID", ctx, warehouseCatalog.ID).Return(warehouseCatalog, nil)
	mockVariants.On("Save", ctx, variant).Return(nil)

	result, err := service.Associate(ctx, variant.ID, AssociateRequest{
		CatalogID:    warehouseCatalog.ID,
		InitialCount: 10,
		LowCount:     2,
	})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 10, result.Count)
	assert.Equal(t, 2, result.LowCount)
	assert.Len(t, variant.Inventories, 1)
	mockVariants.AssertExpectations(t)
}

func TestInventoryService_Associate_UpsertsExistingRecord(t *testing.T) {
	service, mockCatalogs, mockVariants := newTestService()
	ctx := context.Background()

	variant := newTestVariant()
	warehouseCatalog := newTestCatalog(t)

	mockVariants.On("FindByID", ctx, variant.ID).Return(variant, nil)
	mockCatalogs.On("FindByID", ctx, warehouseCatalog.ID).Return(warehouseCatalog, nil)
	mockVariants.On("Save", ctx, variant).Return(nil)

	_, err := service.Associate(ctx, variant.ID, AssociateRequest{
		CatalogID:    warehouseCatalog.ID,
		InitialCount: 10,
		LowCount:     2,
	})
	require.NoError(t, err)

	result, err := service.Associate(ctx, variant.ID, AssociateRequest{
		CatalogID:    warehouseCatalog.ID,
		InitialCount: 25,
		LowCount:     5,
	})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 25, result.Count)
	assert.Len(t, variant.Inventories, 1, "re-association must not create a second record")
}

func TestInventoryService_Associate_UnknownCatalog(t *testing.T) {
	service, mockCatalogs, mockVariants := newTestService()
	ctx := context.Background()

	variant := newTestVariant()
	catalogID := uuid.New()

	mockVariants.On("FindByID", ctx, variant.ID).Return(variant, nil)
	mockCatalogs.On("FindByID", ctx, catalogID).Return(nil, shared.ErrNotFound)

	result, err := service.Associate(ctx, variant.ID, AssociateRequest{CatalogID: catalogID})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Nil(t, result)
	assert.Empty(t, variant.Inventories)
}

func TestInventoryService_Dissociate_RemovesRecord(t *testing.T) {
	service, mockCatalogs, mockVariants := newTestService()
	ctx := context.Background()

	variant := newTestVariant()
	warehouseCatalog := newTestCatalog(t)

	mockVariants.On("FindByID", ctx, variant.ID).Return(variant, nil)
	mockCatalogs.On("FindByID", ctx, warehouseCatalog.ID).Return(warehouseCatalog, nil)
	mockVariants.On("Save", ctx, variant).Return(nil)

	_, err := service.Associate(ctx, variant.ID, AssociateRequest{CatalogID: warehouseCatalog.ID, InitialCount: 10})
	require.NoError(t, err)

	err = service.Dissociate(ctx, variant.ID, warehouseCatalog.ID)

	assert.NoError(t, err)
	assert.Empty(t, variant.Inventories)
}

func TestInventoryService_Dissociate_MissingRecordIsNoOp(t *testing.T) {
	service, _, mockVariants := newTestService()
	ctx := context.Background()

	variant := newTestVariant()

	mockVariants.On("FindByID", ctx, variant.ID).Return(variant, nil)
	mockVariants.On("Save", ctx, variant).Return(nil)

	err := service.Dissociate(ctx, variant.ID, uuid.New())

	assert.NoError(t, err, "dissociating an absent record reports no failure")
	assert.Empty(t, variant.Inventories)
}

func TestInventoryService_StockRecords(t *testing.T) {
	service, mockCatalogs, mockVariants := newTestService()
	ctx := context.Background()

	variant := newTestVariant()
	warehouseCatalog := newTestCatalog(t)

	mockVariants.On("FindByID", ctx, variant.ID).Return(variant, nil)
	mockCatalogs.On("FindByID", ctx, warehouseCatalog.ID).Return(warehouseCatalog, nil)
	mockVariants.On("Save", ctx, variant).Return(nil)

	_, err := service.Associate(ctx, variant.ID, AssociateRequest{CatalogID: warehouseCatalog.ID, InitialCount: 7})
	require.NoError(t, err)

	records, err := service.StockRecords(ctx, variant.ID)

	assert.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, warehouseCatalog.ID, records[0].CatalogID)
	assert.Equal(t, 7, records[0].Count)
}

func TestInventoryService_RenameCatalog(t *testing.T) {
	service, mockCatalogs, _ := newTestService()
	ctx := context.Background()

	warehouseCatalog := newTestCatalog(t)

	mockCatalogs.On("FindByID", ctx, warehouseCatalog.ID).Return(warehouseCatalog, nil)
	mockCatalogs.On("Save", ctx, warehouseCatalog).Return(nil)

	result, err := service.RenameCatalog(ctx, warehouseCatalog.ID, RenameCatalogRequest{Name: "Overflow"})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Overflow", result.Name)
}
