package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
)

// WarehouseCatalog is a warehouse-scoped inventory partition. A variant may
// carry an independent stock record per catalog.
type WarehouseCatalog struct {
	shared.BaseAggregateRoot
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (WarehouseCatalog) TableName() string {
	return "warehouse_catalogs"
}

// NewWarehouseCatalog creates a new catalog within a warehouse
func NewWarehouseCatalog(warehouseID uuid.UUID, name string) (*WarehouseCatalog, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Catalog name cannot be empty")
	}
	return &WarehouseCatalog{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WarehouseID:       warehouseID,
		Name:              name,
	}, nil
}

// Rename updates the catalog name
func (c *WarehouseCatalog) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Catalog name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// CatalogRepository defines the interface for warehouse catalog persistence
type CatalogRepository interface {
	// FindByID finds a catalog by its key
	FindByID(ctx context.Context, id uuid.UUID) (*WarehouseCatalog, error)

	// FindAll finds all catalogs
	FindAll(ctx context.Context, filter shared.Filter) ([]WarehouseCatalog, error)

	// Save creates or updates a catalog
	Save(ctx context.Context, catalog *WarehouseCatalog) error

	// Delete deletes a catalog
	Delete(ctx context.Context, id uuid.UUID) error
}
