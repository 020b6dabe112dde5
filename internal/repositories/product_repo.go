package repositories

import (
	"context"

	"katalog/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	FindByFilter(ctx context.Context, filter models.FilterOptions, sort models.SortCriteria, page models.PageRequest) (models.Page[models.Product], error)
	FindByPartialName(ctx context.Context, name string, sort models.SortCriteria, page models.PageRequest) (models.Page[models.Product], error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	IncreaseLikeCount(ctx context.Context, id uint) (int, error)
	DecreaseLikeCount(ctx context.Context, id uint) (int, error)
}

// ReferenceRepository looks up the reference rows products point at.
type ReferenceRepository interface {
	FindCityByID(ctx context.Context, id uint) (*models.City, error)
	FindSubcategoryByID(ctx context.Context, id uint) (*models.Subcategory, error)
	FindTagByID(ctx context.Context, id uint) (*models.Tag, error)
	FindCurrencyByID(ctx context.Context, id uint) (*models.Currency, error)
	// CitiesShareCountry reports whether every city in ids belongs to one country.
	CitiesShareCountry(ctx context.Context, ids []uint) (bool, error)
}

// LikeRepository records per-member likes and keeps Product.LikeCount in step.
type LikeRepository interface {
	// AddLike likes the product for the member. changed is false when the
	// member already liked it.
	AddLike(ctx context.Context, productID, memberID uint) (status models.LikeStatus, changed bool, err error)
	// RemoveLike unlikes the product for the member. changed is false when
	// the member had not liked it.
	RemoveLike(ctx context.Context, productID, memberID uint) (status models.LikeStatus, changed bool, err error)
	Status(ctx context.Context, productID, memberID uint) (models.LikeStatus, error)
}
