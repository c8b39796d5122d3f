package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/storekit/backend/internal/domain/shared"
	"github.com/storekit/backend/internal/domain/shipping"
	"gorm.io/gorm"
)

// GormShipCountryRepository implements ShipCountryRepository using GORM
type GormShipCountryRepository struct {
	db *gorm.DB
}

// NewGormShipCountryRepository creates a new GormShipCountryRepository
func NewGormShipCountryRepository(db *gorm.DB) *GormShipCountryRepository {
	return &GormShipCountryRepository{db: db}
}

// FindByID finds a ship country by its key
func (r *GormShipCountryRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.ShipCountry, error) {
	var country shipping.ShipCountry
	if err := r.db.WithContext(ctx).First(&country, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &country, nil
}

// FindByCountryCode finds a ship country by its ISO code
func (r *GormShipCountryRepository) FindByCountryCode(ctx context.Context, countryCode string) (*shipping.ShipCountry, error) {
	var country shipping.ShipCountry
	if err := r.db.WithContext(ctx).
		Where("country_code = ?", strings.ToUpper(strings.TrimSpace(countryCode))).
		First(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &country, nil
}

// FindAll finds all ship countries matching the filter
func (r *GormShipCountryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shipping.ShipCountry, error) {
	var countries []shipping.ShipCountry
	query := applyFilter(r.db.WithContext(ctx).Model(&shipping.ShipCountry{}), filter, "name", "country_code")

	if err := query.Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// Save creates or updates a ship country
func (r *GormShipCountryRepository) Save(ctx context.Context, country *shipping.ShipCountry) error {
	return r.db.WithContext(ctx).Save(country).Error
}

// Delete deletes a ship country and the methods configured for it
func (r *GormShipCountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ship_country_id = ?", id).
			Delete(&shipping.RateTableShipMethod{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&shipping.ShipCountry{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormShipCountryRepository implements ShipCountryRepository
var _ shipping.ShipCountryRepository = (*GormShipCountryRepository)(nil)
