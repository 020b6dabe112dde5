package services

import (
	"context"
	"log"
	"time"

	"katalog/internal/models"
	"katalog/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher delivers like events to interested consumers.
type EventPublisher interface {
	PublishLikeEvent(event models.LikeEvent) error
}

// LikeService handles per-member likes of products.
type LikeService struct {
	likes     repositories.LikeRepository
	publisher EventPublisher
}

// NewLikeService creates a new LikeService. publisher may be nil, in which
// case no events are published.
func NewLikeService(likes repositories.LikeRepository, publisher EventPublisher) *LikeService {
	return &LikeService{
		likes:     likes,
		publisher: publisher,
	}
}

// Like records that memberID likes productID. Liking again is a no-op.
func (s *LikeService) Like(ctx context.Context, productID, memberID uint) (models.LikeStatus, error) {
	status, changed, err := s.likes.AddLike(ctx, productID, memberID)
	if err != nil {
		return models.LikeStatus{}, err
	}
	if changed {
		s.publish(productID, memberID, status)
	}
	return status, nil
}

// Unlike removes the like of memberID from productID. Unliking again is a no-op.
func (s *LikeService) Unlike(ctx context.Context, productID, memberID uint) (models.LikeStatus, error) {
	status, changed, err := s.likes.RemoveLike(ctx, productID, memberID)
	if err != nil {
		return models.LikeStatus{}, err
	}
	if changed {
		s.publish(productID, memberID, status)
	}
	return status, nil
}

// Status reports whether memberID likes productID and the product's like count.
func (s *LikeService) Status(ctx context.Context, productID, memberID uint) (models.LikeStatus, error) {
	return s.likes.Status(ctx, productID, memberID)
}

// publish is best effort: the like is already committed.
func (s *LikeService) publish(productID, memberID uint, status models.LikeStatus) {
	if s.publisher == nil {
		return
	}
	event := models.LikeEvent{
		EventID:    uuid.New().String(),
		ProductID:  productID,
		MemberID:   memberID,
		Liked:      status.IsLiked,
		LikeCount:  status.LikeCount,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishLikeEvent(event); err != nil {
		log.Printf("Warning: Failed to publish like event for product %d: %v", productID, err)
	}
}
