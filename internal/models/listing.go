package models

import (
	"fmt"
	"math"
	"sort"
)

// FilterOptions narrows a product listing. A nil or empty set imposes no
// constraint; within a set any ID matches, across sets all must match.
type FilterOptions struct {
	CityIDs        []uint
	SubcategoryIDs []uint
	TagIDs         []uint
}

// Normalize returns a copy with every set de-duplicated and sorted ascending.
func (f FilterOptions) Normalize() FilterOptions {
	return FilterOptions{
		CityIDs:        uniqueSorted(f.CityIDs),
		SubcategoryIDs: uniqueSorted(f.SubcategoryIDs),
		TagIDs:         uniqueSorted(f.TagIDs),
	}
}

// IsEmpty reports whether no dimension narrows the listing.
func (f FilterOptions) IsEmpty() bool {
	return len(f.CityIDs) == 0 && len(f.SubcategoryIDs) == 0 && len(f.TagIDs) == 0
}

func uniqueSorted(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PageRequest selects one page of a listing. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
}

// Validate rejects negative pages, non-positive sizes and pages whose
// offset does not fit in an int.
func (r PageRequest) Validate() error {
	if r.Page < 0 {
		return fmt.Errorf("%w: page %d is negative", ErrInvalidPageRequest, r.Page)
	}
	if r.Size <= 0 {
		return fmt.Errorf("%w: size %d is not positive", ErrInvalidPageRequest, r.Size)
	}
	if r.Page > math.MaxInt/r.Size {
		return fmt.Errorf("%w: page %d of size %d is out of range", ErrInvalidPageRequest, r.Page, r.Size)
	}
	return nil
}

// Offset returns the number of rows to skip.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is one page of a listing plus its envelope metadata.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	Last          bool  `json:"last"`
}

// NewPage assembles the envelope for content fetched with req out of total rows.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if total > 0 && req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		PageNumber:    req.Page,
		PageSize:      req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          req.Page >= totalPages-1,
	}
}

// MapPage converts the content of p, keeping its metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}
	return Page[U]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}
