package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/inventory"
	"github.com/storekit/backend/internal/domain/shared"
)

// InventoryService manages warehouse catalogs and the stock associations
// between product variants and catalogs.
type InventoryService struct {
	catalogRepo inventory.CatalogRepository
	variantRepo catalog.VariantRepository
	ledger      *inventory.Ledger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	catalogRepo inventory.CatalogRepository,
	variantRepo catalog.VariantRepository,
	ledger *inventory.Ledger,
) *InventoryService {
	return &InventoryService{
		catalogRepo: catalogRepo,
		variantRepo: variantRepo,
		ledger:      ledger,
	}
}

// CreateCatalog creates a warehouse catalog
func (s *InventoryService) CreateCatalog(ctx context.Context, req CreateCatalogRequest) (*CatalogResponse, error) {
	warehouseCatalog, err := inventory.NewWarehouseCatalog(req.WarehouseID, req.Name)
	if err != nil {
		return nil, err
	}
	warehouseCatalog.Description = req.Description

	if err := s.catalogRepo.Save(ctx, warehouseCatalog); err != nil {
		return nil, err
	}

	response := ToCatalogResponse(warehouseCatalog)
	return &response, nil
}

// GetCatalog retrieves a warehouse catalog by ID
func (s *InventoryService) GetCatalog(ctx context.Context, catalogID uuid.UUID) (*CatalogResponse, error) {
	warehouseCatalog, err := s.catalogRepo.FindByID(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	response := ToCatalogResponse(warehouseCatalog)
	return &response, nil
}

// ListCatalogs retrieves all warehouse catalogs
func (s *InventoryService) ListCatalogs(ctx context.Context) ([]CatalogResponse, error) {
	catalogs, err := s.catalogRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]CatalogResponse, len(catalogs))
	for i := range catalogs {
		responses[i] = ToCatalogResponse(&catalogs[i])
	}
	return responses, nil
}

// RenameCatalog renames a warehouse catalog
func (s *InventoryService) RenameCatalog(ctx context.Context, catalogID uuid.UUID, req RenameCatalogRequest) (*CatalogResponse, error) {
	warehouseCatalog, err := s.catalogRepo.FindByID(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	if err := warehouseCatalog.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.catalogRepo.Save(ctx, warehouseCatalog); err != nil {
		return nil, err
	}

	response := ToCatalogResponse(warehouseCatalog)
	return &response, nil
}

// DeleteCatalog deletes a warehouse catalog
func (s *InventoryService) DeleteCatalog(ctx context.Context, catalogID uuid.UUID) error {
	if _, err := s.catalogRepo.FindByID(ctx, catalogID); err != nil {
		return err
	}
	return s.catalogRepo.Delete(ctx, catalogID)
}

// Associate creates or updates the stock record tying a variant to a
// warehouse catalog. Associating an already-associated pair updates the
// counts of the existing record.
func (s *InventoryService) Associate(ctx context.Context, variantID uuid.UUID, req AssociateRequest) (*StockRecordResponse, error) {
	variant, err := s.variantRepo.FindByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if _, err := s.catalogRepo.FindByID(ctx, req.CatalogID); err != nil {
		return nil, err
	}

	s.ledger.Associate(variant, req.CatalogID, req.InitialCount, req.LowCount)

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	response := ToStockRecordResponse(s.ledger.RecordFor(variant, req.CatalogID))
	return &response, nil
}

// Dissociate removes the stock record tying a variant to a catalog. A
// missing record is a silent no-op.
func (s *InventoryService) Dissociate(ctx context.Context, variantID, catalogID uuid.UUID) error {
	variant, err := s.variantRepo.FindByID(ctx, variantID)
	if err != nil {
		return err
	}

	s.ledger.Dissociate(variant, catalogID)

	return s.variantRepo.Save(ctx, variant)
}

// StockRecords lists a variant's stock records across all catalogs
func (s *InventoryService) StockRecords(ctx context.Context, variantID uuid.UUID) ([]StockRecordResponse, error) {
	variant, err := s.variantRepo.FindByID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	responses := make([]StockRecordResponse, len(variant.Inventories))
	for i := range variant.Inventories {
		responses[i] = ToStockRecordResponse(&variant.Inventories[i])
	}
	return responses, nil
}
