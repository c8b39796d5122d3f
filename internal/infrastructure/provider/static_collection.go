package provider

import (
	"context"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/collection"
	sharedprovider "github.com/storekit/backend/internal/domain/shared/provider"
)

// StaticCollectionProviderKey is the registration key of the static
// product collection provider
const StaticCollectionProviderKey = "collection.static.product"

// StaticCollectionProvider manages manually curated product collections.
// Membership is persisted directly through the collection repository.
type StaticCollectionProvider struct {
	sharedprovider.BaseProvider
	collections collection.Repository
}

// NewStaticCollectionProvider creates the static product collection provider
func NewStaticCollectionProvider(collections collection.Repository) *StaticCollectionProvider {
	return &StaticCollectionProvider{
		BaseProvider: sharedprovider.NewBaseProvider(StaticCollectionProviderKey, sharedprovider.KindCollection, "Static Product Collection"),
		collections:  collections,
	}
}

// Supports reports whether this provider manages the given entity type
func (p *StaticCollectionProvider) Supports(entityType string) bool {
	return entityType == collection.EntityTypeProduct
}

// Add makes the entity a member of the collection
func (p *StaticCollectionProvider) Add(ctx context.Context, collectionID, entityID uuid.UUID) error {
	return p.collections.AddEntity(ctx, collectionID, entityID)
}

// Remove dissolves the entity's membership in the collection
func (p *StaticCollectionProvider) Remove(ctx context.Context, collectionID, entityID uuid.UUID) error {
	return p.collections.RemoveEntity(ctx, collectionID, entityID)
}

var _ collection.Provider = (*StaticCollectionProvider)(nil)
