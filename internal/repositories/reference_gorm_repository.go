package repositories

import (
	"context"
	"errors"
	"fmt"

	"katalog/internal/models"

	"gorm.io/gorm"
)

// GORMReferenceRepository is a GORM implementation of ReferenceRepository.
type GORMReferenceRepository struct {
	db *gorm.DB
}

// NewGORMReferenceRepository creates a new instance of GORMReferenceRepository.
func NewGORMReferenceRepository(db *gorm.DB) *GORMReferenceRepository {
	return &GORMReferenceRepository{
		db: db,
	}
}

// FindCityByID retrieves a city with its country.
func (r *GORMReferenceRepository) FindCityByID(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	if err := r.db.WithContext(ctx).Preload("Country").First(&city, id).Error; err != nil {
		return nil, notFound(err, models.ErrCityNotFound, "city", id)
	}
	return &city, nil
}

// FindSubcategoryByID retrieves a subcategory with its category.
func (r *GORMReferenceRepository) FindSubcategoryByID(ctx context.Context, id uint) (*models.Subcategory, error) {
	var sub models.Subcategory
	if err := r.db.WithContext(ctx).Preload("Category").First(&sub, id).Error; err != nil {
		return nil, notFound(err, models.ErrSubcategoryNotFound, "subcategory", id)
	}
	return &sub, nil
}

// FindTagByID retrieves a tag.
func (r *GORMReferenceRepository) FindTagByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, notFound(err, models.ErrTagNotFound, "tag", id)
	}
	return &tag, nil
}

// FindCurrencyByID retrieves a currency.
func (r *GORMReferenceRepository) FindCurrencyByID(ctx context.Context, id uint) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.WithContext(ctx).First(&currency, id).Error; err != nil {
		return nil, notFound(err, models.ErrCurrencyNotFound, "currency", id)
	}
	return &currency, nil
}

// CitiesShareCountry counts the distinct countries of the given cities.
// Unknown IDs are not counted.
func (r *GORMReferenceRepository) CitiesShareCountry(ctx context.Context, ids []uint) (bool, error) {
	if len(ids) < 2 {
		return true, nil
	}
	var countries int64
	err := r.db.WithContext(ctx).
		Model(&models.City{}).
		Where("id IN ?", ids).
		Distinct("country_id").
		Count(&countries).Error
	if err != nil {
		return false, fmt.Errorf("failed to count countries of cities %v: %w", ids, err)
	}
	return countries <= 1, nil
}

func notFound(err, sentinel error, kind string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", sentinel, id)
	}
	return fmt.Errorf("failed to get %s by ID %d: %w", kind, id, err)
}
