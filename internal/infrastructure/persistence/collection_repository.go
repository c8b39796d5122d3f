package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/collection"
	"github.com/storekit/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCollectionRepository implements collection.Repository using GORM
type GormCollectionRepository struct {
	db *gorm.DB
}

// NewGormCollectionRepository creates a new GormCollectionRepository
func NewGormCollectionRepository(db *gorm.DB) *GormCollectionRepository {
	return &GormCollectionRepository{db: db}
}

// FindByID finds a collection by its key
func (r *GormCollectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.EntityCollection, error) {
	var coll collection.EntityCollection
	if err := r.db.WithContext(ctx).First(&coll, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &coll, nil
}

// FindAll finds all collections matching the filter
func (r *GormCollectionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]collection.EntityCollection, error) {
	var collections []collection.EntityCollection
	query := applyFilter(r.db.WithContext(ctx).Model(&collection.EntityCollection{}), filter, "name")

	if err := query.Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// FindByEntityKey finds the collections an entity belongs to
func (r *GormCollectionRepository) FindByEntityKey(ctx context.Context, entityID uuid.UUID) ([]collection.EntityCollection, error) {
	var collections []collection.EntityCollection
	if err := r.db.WithContext(ctx).
		Joins("JOIN collection_memberships ON collection_memberships.collection_id = entity_collections.id").
		Where("collection_memberships.entity_id = ?", entityID).
		Order("entity_collections.name ASC").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// FindProviderKey returns the provider key a collection is managed by
func (r *GormCollectionRepository) FindProviderKey(ctx context.Context, collectionID uuid.UUID) (string, error) {
	var providerKey string
	err := r.db.WithContext(ctx).
		Model(&collection.EntityCollection{}).
		Select("provider_key").
		Where("id = ?", collectionID).
		First(&providerKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", shared.ErrNotFound
		}
		return "", err
	}
	return providerKey, nil
}

// Save creates or updates a collection
func (r *GormCollectionRepository) Save(ctx context.Context, coll *collection.EntityCollection) error {
	return r.db.WithContext(ctx).Save(coll).Error
}

// Delete deletes a collection and its memberships
func (r *GormCollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).
			Delete(&collection.Membership{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&collection.EntityCollection{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// AddEntity associates an entity with a collection. Adding an existing
// member is a no-op.
func (r *GormCollectionRepository) AddEntity(ctx context.Context, collectionID, entityID uuid.UUID) error {
	membership := collection.Membership{
		CollectionID: collectionID,
		EntityID:     entityID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&membership).Error
}

// RemoveEntity dissolves the association. Removing a non-member is a no-op.
func (r *GormCollectionRepository) RemoveEntity(ctx context.Context, collectionID, entityID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("collection_id = ? AND entity_id = ?", collectionID, entityID).
		Delete(&collection.Membership{}).Error
}

// ContainsEntity reports whether the entity is a member of the collection
func (r *GormCollectionRepository) ContainsEntity(ctx context.Context, collectionID, entityID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&collection.Membership{}).
		Where("collection_id = ? AND entity_id = ?", collectionID, entityID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormCollectionRepository implements collection.Repository
var _ collection.Repository = (*GormCollectionRepository)(nil)
