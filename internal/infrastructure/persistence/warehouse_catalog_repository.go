package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/inventory"
	"github.com/storekit/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// FindByID finds a catalog by its key
func (r *GormCatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.WarehouseCatalog, error) {
	var catalog inventory.WarehouseCatalog
	if err := r.db.WithContext(ctx).First(&catalog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &catalog, nil
}

// FindAll finds all catalogs matching the filter
func (r *GormCatalogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.WarehouseCatalog, error) {
	var catalogs []inventory.WarehouseCatalog
	query := applyFilter(r.db.WithContext(ctx).Model(&inventory.WarehouseCatalog{}), filter, "name")

	if err := query.Find(&catalogs).Error; err != nil {
		return nil, err
	}
	return catalogs, nil
}

// Save creates or updates a catalog
func (r *GormCatalogRepository) Save(ctx context.Context, catalog *inventory.WarehouseCatalog) error {
	return r.db.WithContext(ctx).Save(catalog).Error
}

// Delete deletes a catalog
func (r *GormCatalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.WarehouseCatalog{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCatalogRepository implements CatalogRepository
var _ inventory.CatalogRepository = (*GormCatalogRepository)(nil)
