package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/catalog"
	"github.com/storekit/backend/internal/domain/inventory"
)

// CreateCatalogRequest represents a request to create a warehouse catalog
type CreateCatalogRequest struct {
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	Name        string    `json:"name" binding:"required,min=1,max=100"`
	Description string    `json:"description" binding:"max=2000"`
}

// RenameCatalogRequest represents a request to rename a warehouse catalog
type RenameCatalogRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AssociateRequest represents a request to associate a variant with a
// warehouse catalog's stock records
type AssociateRequest struct {
	CatalogID    uuid.UUID `json:"catalog_id" binding:"required"`
	InitialCount int       `json:"initial_count" binding:"min=0"`
	LowCount     int       `json:"low_count" binding:"min=0"`
}

// CatalogResponse represents a warehouse catalog in API responses
type CatalogResponse struct {
	ID          uuid.UUID `json:"id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockRecordResponse represents one (variant, catalog) stock record
type StockRecordResponse struct {
	CatalogID uuid.UUID `json:"catalog_id"`
	VariantID uuid.UUID `json:"variant_id"`
	Count     int       `json:"count"`
	LowCount  int       `json:"low_count"`
	Location  string    `json:"location"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCatalogResponse converts a domain WarehouseCatalog to CatalogResponse
func ToCatalogResponse(c *inventory.WarehouseCatalog) CatalogResponse {
	return CatalogResponse{
		ID:          c.ID,
		WarehouseID: c.WarehouseID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToStockRecordResponse converts a domain CatalogInventory to StockRecordResponse
func ToStockRecordResponse(r *catalog.CatalogInventory) StockRecordResponse {
	return StockRecordResponse{
		CatalogID: r.CatalogID,
		VariantID: r.VariantID,
		Count:     r.Count,
		LowCount:  r.LowCount,
		Location:  r.Location,
		UpdatedAt: r.UpdatedAt,
	}
}
