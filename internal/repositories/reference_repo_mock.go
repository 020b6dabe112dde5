package repositories

import (
	"context"
	"fmt"
	"sync"

	"katalog/internal/models"
)

// MockReferenceRepository is an in-memory implementation of ReferenceRepository.
type MockReferenceRepository struct {
	cities        map[uint]models.City
	subcategories map[uint]models.Subcategory
	tags          map[uint]models.Tag
	currencies    map[uint]models.Currency
	mu            sync.RWMutex
}

// NewMockReferenceRepository creates a new instance of MockReferenceRepository.
func NewMockReferenceRepository() *MockReferenceRepository {
	return &MockReferenceRepository{
		cities:        make(map[uint]models.City),
		subcategories: make(map[uint]models.Subcategory),
		tags:          make(map[uint]models.Tag),
		currencies:    make(map[uint]models.Currency),
	}
}

// AddCity stores a city. CountryID decides which cities share a country.
func (r *MockReferenceRepository) AddCity(city models.City) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cities[city.ID] = city
}

// AddSubcategory stores a subcategory.
func (r *MockReferenceRepository) AddSubcategory(sub models.Subcategory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subcategories[sub.ID] = sub
}

// AddTag stores a tag.
func (r *MockReferenceRepository) AddTag(tag models.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags[tag.ID] = tag
}

// AddCurrency stores a currency.
func (r *MockReferenceRepository) AddCurrency(currency models.Currency) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currencies[currency.ID] = currency
}

// FindCityByID returns a city by its ID.
func (r *MockReferenceRepository) FindCityByID(_ context.Context, id uint) (*models.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	city, ok := r.cities[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrCityNotFound, id)
	}
	return &city, nil
}

// FindSubcategoryByID returns a subcategory by its ID.
func (r *MockReferenceRepository) FindSubcategoryByID(_ context.Context, id uint) (*models.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.subcategories[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrSubcategoryNotFound, id)
	}
	return &sub, nil
}

// FindTagByID returns a tag by its ID.
func (r *MockReferenceRepository) FindTagByID(_ context.Context, id uint) (*models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.tags[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrTagNotFound, id)
	}
	return &tag, nil
}

// FindCurrencyByID returns a currency by its ID.
func (r *MockReferenceRepository) FindCurrencyByID(_ context.Context, id uint) (*models.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currency, ok := r.currencies[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrCurrencyNotFound, id)
	}
	return &currency, nil
}

// CitiesShareCountry reports whether the known cities in ids share a country.
func (r *MockReferenceRepository) CitiesShareCountry(_ context.Context, ids []uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	countries := make(map[uint]struct{})
	for _, id := range ids {
		if city, ok := r.cities[id]; ok {
			countries[city.CountryID] = struct{}{}
		}
	}
	return len(countries) <= 1, nil
}
