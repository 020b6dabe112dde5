package models_test

import (
	"math"
	"testing"

	"katalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFilterOptions_Normalize(t *testing.T) {
	f := models.FilterOptions{
		CityIDs:        []uint{3, 1, 3, 2},
		SubcategoryIDs: []uint{},
		TagIDs:         nil,
	}

	n := f.Normalize()

	assert.Equal(t, []uint{1, 2, 3}, n.CityIDs)
	assert.Nil(t, n.SubcategoryIDs)
	assert.Nil(t, n.TagIDs)
	assert.Equal(t, []uint{3, 1, 3, 2}, f.CityIDs, "input is not modified")
}

func TestFilterOptions_IsEmpty(t *testing.T) {
	assert.True(t, models.FilterOptions{}.IsEmpty())
	assert.True(t, models.FilterOptions{CityIDs: []uint{}}.IsEmpty())
	assert.False(t, models.FilterOptions{TagIDs: []uint{1}}.IsEmpty())
}

func TestPageRequest_Validate(t *testing.T) {
	assert.NoError(t, models.PageRequest{Page: 0, Size: 1}.Validate())
	assert.ErrorIs(t, models.PageRequest{Page: -1, Size: 10}.Validate(), models.ErrInvalidPageRequest)
	assert.ErrorIs(t, models.PageRequest{Page: 0, Size: 0}.Validate(), models.ErrInvalidPageRequest)
	assert.Equal(t, 20, models.PageRequest{Page: 2, Size: 10}.Offset())
}

func TestPageRequest_ValidateRejectsOverflowingOffset(t *testing.T) {
	assert.ErrorIs(t, models.PageRequest{Page: math.MaxInt/100 + 1, Size: 100}.Validate(), models.ErrInvalidPageRequest)
	assert.ErrorIs(t, models.PageRequest{Page: math.MaxInt, Size: 2}.Validate(), models.ErrInvalidPageRequest)

	edge := models.PageRequest{Page: math.MaxInt / 100, Size: 100}
	assert.NoError(t, edge.Validate())
	assert.Positive(t, edge.Offset())
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		req        models.PageRequest
		total      int64
		totalPages int
		last       bool
	}{
		{"empty", models.PageRequest{Page: 0, Size: 10}, 0, 0, true},
		{"exact fit", models.PageRequest{Page: 0, Size: 5}, 10, 2, false},
		{"last of exact fit", models.PageRequest{Page: 1, Size: 5}, 10, 2, true},
		{"remainder", models.PageRequest{Page: 1, Size: 3}, 7, 3, false},
		{"past the end", models.PageRequest{Page: 9, Size: 3}, 7, 3, true},
		{"single page", models.PageRequest{Page: 0, Size: 10}, 3, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.NewPage[int](nil, tt.req, tt.total)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.last, p.Last)
			assert.Equal(t, tt.total, p.TotalElements)
			assert.Equal(t, tt.req.Page, p.PageNumber)
			assert.Equal(t, tt.req.Size, p.PageSize)
			assert.NotNil(t, p.Content)
		})
	}
}

func TestMapPage(t *testing.T) {
	p := models.NewPage([]int{1, 2, 3}, models.PageRequest{Page: 0, Size: 3}, 5)

	mapped := models.MapPage(p, func(i int) string { return string(rune('a' + i - 1)) })

	assert.Equal(t, []string{"a", "b", "c"}, mapped.Content)
	assert.Equal(t, p.TotalElements, mapped.TotalElements)
	assert.Equal(t, p.TotalPages, mapped.TotalPages)
	assert.Equal(t, p.Last, mapped.Last)
}
