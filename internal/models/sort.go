package models

import (
	"fmt"
	"strings"
)

// SortField enumerates the product attributes a listing can be sorted by.
type SortField int

const (
	SortByCreatedAt SortField = iota
	SortByPrice
	SortByRating
	SortByLikeCount
)

// sortKeys maps every accepted external sort key to its field. Both spellings
// are accepted because clients send either.
var sortKeys = map[string]SortField{
	"created_at": SortByCreatedAt,
	"createdAt":  SortByCreatedAt,
	"price":      SortByPrice,
	"rating":     SortByRating,
	"like_count": SortByLikeCount,
	"likeCount":  SortByLikeCount,
}

// Column returns the products column backing the field.
func (f SortField) Column() string {
	switch f {
	case SortByPrice:
		return "price"
	case SortByRating:
		return "rating"
	case SortByLikeCount:
		return "like_count"
	default:
		return "created_at"
	}
}

func (f SortField) String() string {
	return f.Column()
}

// SortOptions holds the raw sort parameters of a request.
type SortOptions struct {
	SortBy        string
	SortDirection string
}

// SortCriteria is a resolved sort order.
type SortCriteria struct {
	Field     SortField
	Ascending bool
}

// DefaultSort is newest first.
var DefaultSort = SortCriteria{Field: SortByCreatedAt, Ascending: false}

// ResolveSort maps raw sort options onto a SortCriteria. An empty key means
// creation time and an empty direction means descending.
func ResolveSort(opts SortOptions) (SortCriteria, error) {
	criteria := DefaultSort

	if key := strings.TrimSpace(opts.SortBy); key != "" {
		field, ok := sortKeys[key]
		if !ok {
			return SortCriteria{}, fmt.Errorf("%w: %q", ErrUnknownSortField, opts.SortBy)
		}
		criteria.Field = field
	}

	switch strings.ToUpper(strings.TrimSpace(opts.SortDirection)) {
	case "", "DESC":
		criteria.Ascending = false
	case "ASC":
		criteria.Ascending = true
	default:
		return SortCriteria{}, fmt.Errorf("%w: %q", ErrInvalidSortDirection, opts.SortDirection)
	}

	return criteria, nil
}
