package collection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
)

// EntityTypeProduct is the entity family product collections manage
const EntityTypeProduct = "product"

// EntityCollection is a named grouping of entities of a single type, managed
// by the provider registered under its provider key.
type EntityCollection struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(100);not null"`
	EntityType  string `gorm:"type:varchar(50);not null;index"`
	ProviderKey string `gorm:"type:varchar(100);not null;index"`
}

// TableName returns the table name for GORM
func (EntityCollection) TableName() string {
	return "entity_collections"
}

// NewEntityCollection creates a new entity collection
func NewEntityCollection(name, entityType, providerKey string) (*EntityCollection, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Collection name cannot be empty")
	}
	if entityType == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Collection entity type cannot be empty")
	}
	if providerKey == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Collection provider key cannot be empty")
	}
	return &EntityCollection{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		EntityType:        entityType,
		ProviderKey:       providerKey,
	}, nil
}

// Rename updates the collection name
func (c *EntityCollection) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Collection name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Membership is one (collection, entity) association row
type Membership struct {
	CollectionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntityID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt    time.Time
}

// TableName returns the table name for GORM
func (Membership) TableName() string {
	return "collection_memberships"
}

// Repository defines the interface for collection persistence and membership
type Repository interface {
	// FindByID finds a collection by its key
	FindByID(ctx context.Context, id uuid.UUID) (*EntityCollection, error)

	// FindAll finds all collections matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]EntityCollection, error)

	// FindByEntityKey finds the collections an entity belongs to
	FindByEntityKey(ctx context.Context, entityID uuid.UUID) ([]EntityCollection, error)

	// FindProviderKey returns the provider key a collection is managed by
	FindProviderKey(ctx context.Context, collectionID uuid.UUID) (string, error)

	// Save creates or updates a collection
	Save(ctx context.Context, collection *EntityCollection) error

	// Delete deletes a collection and its memberships
	Delete(ctx context.Context, id uuid.UUID) error

	// AddEntity associates an entity with a collection. Adding an entity
	// that is already a member is a no-op.
	AddEntity(ctx context.Context, collectionID, entityID uuid.UUID) error

	// RemoveEntity dissolves the association. Removing a non-member is a no-op.
	RemoveEntity(ctx context.Context, collectionID, entityID uuid.UUID) error

	// ContainsEntity reports whether the entity is a member of the collection
	ContainsEntity(ctx context.Context, collectionID, entityID uuid.UUID) (bool, error)
}
