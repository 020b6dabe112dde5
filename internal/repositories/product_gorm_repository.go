package repositories

import (
	"context"
	"errors"
	"fmt"

	"katalog/internal/models"
	"katalog/pkg/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productColumns are the columns Update writes. like_count is owned by the
// like counter and never written here.
var productColumns = []string{
	"Name", "Description", "Address", "Price", "Rating",
	"CityID", "SubcategoryID", "CurrencyID", "UpdatedAt",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindByFilter returns one page of products matching filter.
func (r *GORMProductRepository) FindByFilter(ctx context.Context, filter models.FilterOptions, sort models.SortCriteria, page models.PageRequest) (models.Page[models.Product], error) {
	return r.findPage(ctx, ProductFilterPlan(filter), sort, page)
}

// FindByPartialName returns one page of products whose name contains name.
func (r *GORMProductRepository) FindByPartialName(ctx context.Context, name string, sort models.SortCriteria, page models.PageRequest) (models.Page[models.Product], error) {
	return r.findPage(ctx, ProductSearchPlan(name), sort, page)
}

// findPage counts, then fetches, from the same plan. The fetch is skipped
// when the requested page lies past the last one.
func (r *GORMProductRepository) findPage(ctx context.Context, plan *query.Plan, sort models.SortCriteria, page models.PageRequest) (models.Page[models.Product], error) {
	db := r.db.WithContext(ctx)

	total, err := plan.Count(db)
	if err != nil {
		return models.Page[models.Product]{}, err
	}
	if page.Size <= 0 || int64(page.Page) >= (total+int64(page.Size)-1)/int64(page.Size) {
		return models.NewPage[models.Product](nil, page, total), nil
	}

	var products []models.Product
	err = sorted(plan, sort).
		Preload(listingPreloads...).
		Fetch(db, &products, page.Offset(), page.Size)
	if err != nil {
		return models.Page[models.Product]{}, err
	}
	return models.NewPage(products, page, total), nil
}

// GetByID retrieves a single product with its associations.
func (r *GORMProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	tx := r.db.WithContext(ctx)
	for _, assoc := range listingPreloads {
		tx = tx.Preload(assoc)
	}
	if err := tx.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", models.ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts product together with its tag rows.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update writes the editable columns of product and replaces its tag set.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(product).Select(productColumns).Updates(product)
		if res.Error != nil {
			return fmt.Errorf("failed to update product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: id %d", models.ErrProductNotFound, product.ID)
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductTag{}).Error; err != nil {
			return fmt.Errorf("failed to clear tags of product %d: %w", product.ID, err)
		}
		if len(product.ProductTags) == 0 {
			return nil
		}
		for i := range product.ProductTags {
			product.ProductTags[i].ProductID = product.ID
		}
		if err := tx.Omit(clause.Associations).Create(&product.ProductTags).Error; err != nil {
			return fmt.Errorf("failed to attach tags to product %d: %w", product.ID, err)
		}
		return nil
	})
}

// Delete removes a product with its tag and like rows.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductTag{}).Error; err != nil {
			return fmt.Errorf("failed to delete tags of product %d: %w", id, err)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes of product %d: %w", id, err)
		}
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: id %d", models.ErrProductNotFound, id)
		}
		return nil
	})
}

// IncreaseLikeCount adds one to the stored like count. At the maximum the
// transaction rolls back and the unchanged count is returned with the error.
func (r *GORMProductRepository) IncreaseLikeCount(ctx context.Context, id uint) (int, error) {
	return r.mutateLikeCount(ctx, id, (*models.Product).IncreaseLikeCount)
}

// DecreaseLikeCount subtracts one from the stored like count. At zero the
// transaction rolls back and the unchanged count is returned with the error.
func (r *GORMProductRepository) DecreaseLikeCount(ctx context.Context, id uint) (int, error) {
	return r.mutateLikeCount(ctx, id, (*models.Product).DecreaseLikeCount)
}

// mutateLikeCount locks, mutates and writes the counter. On a repository
// bound to an open transaction it runs in a nested savepoint.
func (r *GORMProductRepository) mutateLikeCount(ctx context.Context, id uint, mutate func(*models.Product) (int, error)) (int, error) {
	var count int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := lockProduct(tx, id)
		if err != nil {
			return err
		}
		count, err = mutate(product)
		if err != nil {
			return err
		}
		return saveLikeCount(tx, product)
	})
	return count, err
}

// lockProduct reads the product row for update. sqlite ignores the locking
// clause and serialises writers instead.
func lockProduct(tx *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", models.ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("failed to lock product %d: %w", id, err)
	}
	return &product, nil
}

func saveLikeCount(tx *gorm.DB, product *models.Product) error {
	err := tx.Model(&models.Product{}).
		Where("id = ?", product.ID).
		UpdateColumn("like_count", product.LikeCount).Error
	if err != nil {
		return fmt.Errorf("failed to save like count of product %d: %w", product.ID, err)
	}
	return nil
}
