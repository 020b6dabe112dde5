package repositories

import (
	"context"
	"errors"
	"fmt"

	"katalog/internal/models"

	"gorm.io/gorm"
)

// GORMLikeRepository is a GORM implementation of LikeRepository.
type GORMLikeRepository struct {
	db *gorm.DB
}

// NewGORMLikeRepository creates a new instance of GORMLikeRepository.
func NewGORMLikeRepository(db *gorm.DB) *GORMLikeRepository {
	return &GORMLikeRepository{
		db: db,
	}
}

// AddLike inserts the member's like and increments the counter in one
// transaction. Liking twice leaves both untouched. The counter goes through
// the product repository bound to the same transaction.
func (r *GORMLikeRepository) AddLike(ctx context.Context, productID, memberID uint) (models.LikeStatus, bool, error) {
	var status models.LikeStatus
	var changed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := lockProduct(tx, productID)
		if err != nil {
			return err
		}
		liked, err := hasLike(tx, productID, memberID)
		if err != nil {
			return err
		}
		if liked {
			status = models.LikeStatus{IsLiked: true, LikeCount: product.LikeCount}
			return nil
		}

		like := models.Like{ProductID: productID, MemberID: memberID}
		if err := tx.Create(&like).Error; err != nil {
			return fmt.Errorf("failed to create like: %w", err)
		}
		count, err := NewGORMProductRepository(tx).IncreaseLikeCount(ctx, productID)
		if err != nil {
			return err
		}
		status = models.LikeStatus{IsLiked: true, LikeCount: count}
		changed = true
		return nil
	})
	if err != nil {
		return models.LikeStatus{}, false, err
	}
	return status, changed, nil
}

// RemoveLike deletes the member's like and decrements the counter in one
// transaction. Unliking without a like leaves both untouched.
func (r *GORMLikeRepository) RemoveLike(ctx context.Context, productID, memberID uint) (models.LikeStatus, bool, error) {
	var status models.LikeStatus
	var changed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := lockProduct(tx, productID)
		if err != nil {
			return err
		}
		res := tx.Where("product_id = ? AND member_id = ?", productID, memberID).Delete(&models.Like{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete like: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			status = models.LikeStatus{IsLiked: false, LikeCount: product.LikeCount}
			return nil
		}

		count, err := NewGORMProductRepository(tx).DecreaseLikeCount(ctx, productID)
		if err != nil {
			return err
		}
		status = models.LikeStatus{IsLiked: false, LikeCount: count}
		changed = true
		return nil
	})
	if err != nil {
		return models.LikeStatus{}, false, err
	}
	return status, changed, nil
}

// Status reports whether the member likes the product and its like count.
func (r *GORMLikeRepository) Status(ctx context.Context, productID, memberID uint) (models.LikeStatus, error) {
	db := r.db.WithContext(ctx)
	var product models.Product
	if err := db.Select("id", "like_count").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LikeStatus{}, fmt.Errorf("%w: id %d", models.ErrProductNotFound, productID)
		}
		return models.LikeStatus{}, fmt.Errorf("failed to get product %d: %w", productID, err)
	}
	liked, err := hasLike(db, productID, memberID)
	if err != nil {
		return models.LikeStatus{}, err
	}
	return models.LikeStatus{IsLiked: liked, LikeCount: product.LikeCount}, nil
}

func hasLike(db *gorm.DB, productID, memberID uint) (bool, error) {
	var n int64
	err := db.Model(&models.Like{}).
		Where("product_id = ? AND member_id = ?", productID, memberID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like of product %d: %w", productID, err)
	}
	return n > 0, nil
}
