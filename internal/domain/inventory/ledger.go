package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/catalog"
)

// Ledger maintains the variant-to-catalog stock associations owned by a
// product variant. It is a stateless domain service: the records live on
// the variant aggregate and persistence is the caller's responsibility.
//
// Association is an upsert. The reference behavior appended unconditionally,
// which allowed duplicate (variant, catalog) records; the ledger instead
// enforces at most one record per pair.
type Ledger struct{}

// NewLedger creates a new inventory ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Associate creates the stock record for (variant, catalog), or updates the
// counts of the existing record when the pair is already associated.
func (l *Ledger) Associate(variant *catalog.ProductVariant, catalogID uuid.UUID, initialCount, lowCount int) {
	now := time.Now()
	for i := range variant.Inventories {
		if variant.Inventories[i].CatalogID == catalogID {
			variant.Inventories[i].Count = initialCount
			variant.Inventories[i].LowCount = lowCount
			variant.Inventories[i].UpdatedAt = now
			return
		}
	}

	variant.Inventories = append(variant.Inventories, catalog.CatalogInventory{
		CatalogID: catalogID,
		VariantID: variant.ID,
		Count:     initialCount,
		LowCount:  lowCount,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Dissociate removes the stock record for (variant, catalog). A missing
// record is a silent no-op: the variant's inventory set is left unchanged
// and no failure is reported.
func (l *Ledger) Dissociate(variant *catalog.ProductVariant, catalogID uuid.UUID) {
	for i := range variant.Inventories {
		if variant.Inventories[i].CatalogID == catalogID {
			variant.Inventories = append(variant.Inventories[:i], variant.Inventories[i+1:]...)
			return
		}
	}
}

// DissociateCatalog is the entity-keyed form of Dissociate
func (l *Ledger) DissociateCatalog(variant *catalog.ProductVariant, warehouseCatalog *WarehouseCatalog) {
	l.Dissociate(variant, warehouseCatalog.ID)
}

// RecordFor returns the variant's stock record for the given catalog, or nil
func (l *Ledger) RecordFor(variant *catalog.ProductVariant, catalogID uuid.UUID) *catalog.CatalogInventory {
	for i := range variant.Inventories {
		if variant.Inventories[i].CatalogID == catalogID {
			return &variant.Inventories[i]
		}
	}
	return nil
}
