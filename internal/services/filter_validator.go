package services

import (
	"context"
	"fmt"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// FilterValidator checks that the IDs of a product listing filter exist and
// belong together. It only reads reference data.
type FilterValidator struct {
	refs repositories.ReferenceRepository
}

// NewFilterValidator creates a new FilterValidator.
func NewFilterValidator(refs repositories.ReferenceRepository) *FilterValidator {
	return &FilterValidator{
		refs: refs,
	}
}

// Validate normalizes filter, then checks cities, subcategories and tags in
// that order, each in ascending ID order. It returns the normalized filter
// or the first failure.
func (v *FilterValidator) Validate(ctx context.Context, filter models.FilterOptions) (models.FilterOptions, error) {
	f := filter.Normalize()
	if f.IsEmpty() {
		return f, nil
	}

	for _, id := range f.CityIDs {
		if _, err := v.refs.FindCityByID(ctx, id); err != nil {
			return models.FilterOptions{}, err
		}
	}
	if len(f.CityIDs) > 1 {
		same, err := v.refs.CitiesShareCountry(ctx, f.CityIDs)
		if err != nil {
			return models.FilterOptions{}, err
		}
		if !same {
			return models.FilterOptions{}, fmt.Errorf("%w: cities %v", models.ErrInconsistentCityFilter, f.CityIDs)
		}
	}

	for _, id := range f.SubcategoryIDs {
		if _, err := v.refs.FindSubcategoryByID(ctx, id); err != nil {
			return models.FilterOptions{}, err
		}
	}

	for _, id := range f.TagIDs {
		if _, err := v.refs.FindTagByID(ctx, id); err != nil {
			return models.FilterOptions{}, err
		}
	}
	return f, nil
}
