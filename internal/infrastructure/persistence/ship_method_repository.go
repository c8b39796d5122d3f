package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shipping"
	"gorm.io/gorm"
)

// GormShipMethodRepository implements ShipMethodRepository using GORM
type GormShipMethodRepository struct {
	db *gorm.DB
}

// NewGormShipMethodRepository creates a new GormShipMethodRepository
func NewGormShipMethodRepository(db *gorm.DB) *GormShipMethodRepository {
	return &GormShipMethodRepository{db: db}
}

// FindByID finds a method by its key
func (r *GormShipMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.RateTableShipMethod, error) {
	var method shipping.RateTableShipMethod
	if err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &method, nil
}

// FindByCountryAndProvider finds all methods owned by a (country, provider) pair
func (r *GormShipMethodRepository) FindByCountryAndProvider(ctx context.Context, shipCountryID uuid.UUID, providerKey string) ([]shipping.RateTableShipMethod, error) {
	var methods []shipping.RateTableShipMethod
	if err := r.db.WithContext(ctx).
		Where("ship_country_id = ? AND provider_key = ?", shipCountryID, providerKey).
		Order("name ASC").
		Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// Save creates or updates a method
func (r *GormShipMethodRepository) Save(ctx context.Context, method *shipping.RateTableShipMethod) error {
	return r.db.WithContext(ctx).Save(method).Error
}

// Delete deletes a method
func (r *GormShipMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shipping.RateTableShipMethod{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormShipMethodRepository implements ShipMethodRepository
var _ shipping.ShipMethodRepository = (*GormShipMethodRepository)(nil)
