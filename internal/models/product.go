package models

import (
	"fmt"
	"math"
	"time"
)

// MaxLikeCount is the upper bound of Product.LikeCount.
const MaxLikeCount = math.MaxInt32

// Product represents a listing in the catalog.
type Product struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	MemberID      uint         `json:"member_id" gorm:"not null;index"`
	Name          string       `json:"name" gorm:"type:varchar(100);not null"`
	Description   string       `json:"description" gorm:"type:varchar(2000);not null"`
	Address       string       `json:"address" gorm:"type:varchar(100);not null;default:''"`
	Price         int          `json:"price" gorm:"not null;default:0"`
	Rating        float64      `json:"rating" gorm:"not null"`
	LikeCount     int          `json:"like_count" gorm:"not null;default:0"`
	CityID        uint         `json:"city_id" gorm:"not null;index"`
	City          City         `json:"city"`
	SubcategoryID uint         `json:"subcategory_id" gorm:"not null;index"`
	Subcategory   Subcategory  `json:"subcategory"`
	CurrencyID    uint         `json:"currency_id" gorm:"not null"`
	Currency      Currency     `json:"currency"`
	ProductTags   []ProductTag `json:"tags"`
	CreatedAt     time.Time    `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ProductTag pairs one Product with one Tag.
type ProductTag struct {
	ProductID uint `json:"-" gorm:"primaryKey"`
	TagID     uint `json:"id" gorm:"primaryKey;index"`
	Tag       Tag  `json:"tag"`
}

// IncreaseLikeCount adds one like. The count is left untouched when it is
// already at MaxLikeCount.
func (p *Product) IncreaseLikeCount() (int, error) {
	if p.LikeCount >= MaxLikeCount {
		return p.LikeCount, fmt.Errorf("%w: product %d", ErrLikeCountMaximumExceeded, p.ID)
	}
	p.LikeCount++
	return p.LikeCount, nil
}

// DecreaseLikeCount removes one like. The count is left untouched when it is
// already zero.
func (p *Product) DecreaseLikeCount() (int, error) {
	if p.LikeCount <= 0 {
		return p.LikeCount, fmt.Errorf("%w: product %d", ErrLikeCountMinimumExceeded, p.ID)
	}
	p.LikeCount--
	return p.LikeCount, nil
}

// TagIDs returns the IDs of the tags attached to the product.
func (p *Product) TagIDs() []uint {
	ids := make([]uint, 0, len(p.ProductTags))
	for _, pt := range p.ProductTags {
		ids = append(ids, pt.TagID)
	}
	return ids
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Description   string  `json:"description" validate:"required,max=2000"`
	Address       string  `json:"address" validate:"omitempty,max=100"`
	Price         int     `json:"price" validate:"gte=0"`
	Rating        float64 `json:"rating" validate:"required"`
	CityID        uint    `json:"city_id" validate:"required"`
	SubcategoryID uint    `json:"subcategory_id" validate:"required"`
	CurrencyID    uint    `json:"currency_id" validate:"required"`
	TagIDs        []uint  `json:"tag_ids" validate:"omitempty,dive,required"`
}

// ValidateRating checks that r is one of 0.5, 1.0, ..., 5.0.
func ValidateRating(r float64) error {
	doubled := r * 2
	if doubled < 1 || doubled > 10 || doubled != math.Trunc(doubled) {
		return fmt.Errorf("%w: got %v", ErrInvalidRating, r)
	}
	return nil
}

// Apply copies the input onto p, replacing its tag set.
func (in ProductInput) Apply(p *Product) {
	p.Name = in.Name
	p.Description = in.Description
	p.Address = in.Address
	p.Price = in.Price
	p.Rating = in.Rating
	p.CityID = in.CityID
	p.SubcategoryID = in.SubcategoryID
	p.CurrencyID = in.CurrencyID
	tagIDs := uniqueSorted(in.TagIDs)
	p.ProductTags = make([]ProductTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		p.ProductTags = append(p.ProductTags, ProductTag{ProductID: p.ID, TagID: id})
	}
}

// ProductSummary is the listing shape of a product.
type ProductSummary struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Price           int       `json:"price"`
	CurrencyCode    string    `json:"currency_code"`
	Rating          float64   `json:"rating"`
	LikeCount       int       `json:"like_count"`
	CityName        string    `json:"city_name"`
	CountryName     string    `json:"country_name"`
	SubcategoryName string    `json:"subcategory_name"`
	CategoryName    string    `json:"category_name"`
	Tags            []string  `json:"tags"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewProductSummary builds a summary from a product with its associations loaded.
func NewProductSummary(p Product) ProductSummary {
	tags := make([]string, 0, len(p.ProductTags))
	for _, pt := range p.ProductTags {
		tags = append(tags, pt.Tag.Name)
	}
	return ProductSummary{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		CurrencyCode:    p.Currency.Code,
		Rating:          p.Rating,
		LikeCount:       p.LikeCount,
		CityName:        p.City.Name,
		CountryName:     p.City.Country.Name,
		SubcategoryName: p.Subcategory.Name,
		CategoryName:    p.Subcategory.Category.Name,
		Tags:            tags,
		CreatedAt:       p.CreatedAt,
	}
}
