package models

import "errors"

// Catalog errors as sentinel values. Callers wrap them with the offending
// value and match with errors.Is.
var (
	// Not-found errors
	ErrProductNotFound     = errors.New("product not found")
	ErrCityNotFound        = errors.New("city not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrTagNotFound         = errors.New("tag not found")
	ErrCurrencyNotFound    = errors.New("currency not found")

	// Inconsistency errors
	ErrInconsistentCityFilter = errors.New("cities do not belong to the same country")

	// Invalid-input errors
	ErrUnknownSortField     = errors.New("unknown sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidPageRequest   = errors.New("invalid page request")
	ErrBlankSearchName      = errors.New("search name must not be blank")
	ErrInvalidRating        = errors.New("rating must be between 0.5 and 5.0 in steps of 0.5")
	ErrInvalidProduct       = errors.New("invalid product")

	// Bound-violation errors
	ErrLikeCountMaximumExceeded = errors.New("like count is already at its maximum")
	ErrLikeCountMinimumExceeded = errors.New("like count is already at its minimum")

	// Ownership errors
	ErrProductMemberMismatch = errors.New("product does not belong to the member")

	// Authentication errors
	ErrInvalidToken = errors.New("invalid token")
)
