package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"katalog/internal/models"
	"katalog/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	refs     repositories.ReferenceRepository
	filters  *FilterValidator
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, refs repositories.ReferenceRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		refs:     refs,
		filters:  NewFilterValidator(refs),
		validate: validator.New(),
	}
}

// FindProducts returns one page of product summaries matching filter.
// Every argument is validated before the products table is queried.
func (s *ProductService) FindProducts(ctx context.Context, page models.PageRequest, filter models.FilterOptions, sort models.SortOptions) (models.Page[models.ProductSummary], error) {
	if err := page.Validate(); err != nil {
		return models.Page[models.ProductSummary]{}, err
	}
	criteria, err := models.ResolveSort(sort)
	if err != nil {
		return models.Page[models.ProductSummary]{}, err
	}
	filter, err = s.filters.Validate(ctx, filter)
	if err != nil {
		return models.Page[models.ProductSummary]{}, err
	}

	products, err := s.repo.FindByFilter(ctx, filter, criteria, page)
	if err != nil {
		return models.Page[models.ProductSummary]{}, err
	}
	return models.MapPage(products, models.NewProductSummary), nil
}

// SearchProducts returns one page of product summaries whose name contains
// partialName, matched case-sensitively.
func (s *ProductService) SearchProducts(ctx context.Context, partialName string, page models.PageRequest, sort models.SortOptions) (models.Page[models.ProductSummary], error) {
	if strings.TrimSpace(partialName) == "" {
		return models.Page[models.ProductSummary]{}, models.ErrBlankSearchName
	}
	if err := page.Validate(); err != nil {
		return models.Page[models.ProductSummary]{}, err
	}
	criteria, err := models.ResolveSort(sort)
	if err != nil {
		return models.Page[models.ProductSummary]{}, err
	}

	products, err := s.repo.FindByPartialName(ctx, partialName, criteria, page)
	if err != nil {
		return models.Page[models.ProductSummary]{}, err
	}
	return models.MapPage(products, models.NewProductSummary), nil
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct creates a product owned by memberID.
func (s *ProductService) CreateProduct(ctx context.Context, memberID uint, in models.ProductInput) (*models.Product, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	product := &models.Product{MemberID: memberID}
	in.Apply(product)
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	log.Printf("Product %d created by member %d", product.ID, memberID)
	return s.repo.GetByID(ctx, product.ID)
}

// UpdateProduct replaces the writable fields of a product owned by memberID.
func (s *ProductService) UpdateProduct(ctx context.Context, memberID, id uint, in models.ProductInput) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, memberID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	in.Apply(product)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteProduct deletes a product owned by memberID.
func (s *ProductService) DeleteProduct(ctx context.Context, memberID, id uint) error {
	if _, err := s.ownedProduct(ctx, memberID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("Product %d deleted by member %d", id, memberID)
	return nil
}

func (s *ProductService) ownedProduct(ctx context.Context, memberID, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.MemberID != memberID {
		return nil, fmt.Errorf("%w: product %d, member %d", models.ErrProductMemberMismatch, id, memberID)
	}
	return product, nil
}

// validateInput checks field constraints, then that every referenced row exists.
func (s *ProductService) validateInput(ctx context.Context, in models.ProductInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
	}
	if err := models.ValidateRating(in.Rating); err != nil {
		return err
	}
	if _, err := s.refs.FindCityByID(ctx, in.CityID); err != nil {
		return err
	}
	if _, err := s.refs.FindSubcategoryByID(ctx, in.SubcategoryID); err != nil {
		return err
	}
	if _, err := s.refs.FindCurrencyByID(ctx, in.CurrencyID); err != nil {
		return err
	}
	for _, id := range in.TagIDs {
		if _, err := s.refs.FindTagByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
