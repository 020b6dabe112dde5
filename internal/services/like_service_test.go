package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLikeService_LikePublishesOnChange(t *testing.T) {
	likes := new(MockLikeRepository)
	publisher := new(MockPublisher)
	service := services.NewLikeService(likes, publisher)
	ctx := context.Background()

	likes.On("AddLike", ctx, uint(1), uint(7)).Return(models.LikeStatus{IsLiked: true, LikeCount: 3}, true, nil).Once()
	publisher.On("PublishLikeEvent", mock.MatchedBy(func(e models.LikeEvent) bool {
		return e.ProductID == 1 && e.MemberID == 7 && e.Liked && e.LikeCount == 3 && e.EventID != ""
	})).Return(nil).Once()

	status, err := service.Like(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, models.LikeStatus{IsLiked: true, LikeCount: 3}, status)
	likes.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestLikeService_RepeatedLikeDoesNotPublish(t *testing.T) {
	likes := new(MockLikeRepository)
	publisher := new(MockPublisher)
	service := services.NewLikeService(likes, publisher)
	ctx := context.Background()

	likes.On("AddLike", ctx, uint(1), uint(7)).Return(models.LikeStatus{IsLiked: true, LikeCount: 3}, false, nil).Once()

	status, err := service.Like(ctx, 1, 7)
	require.NoError(t, err)
	assert.True(t, status.IsLiked)
	publisher.AssertNotCalled(t, "PublishLikeEvent", mock.Anything)
}

func TestLikeService_UnlikeSurvivesPublishFailure(t *testing.T) {
	likes := new(MockLikeRepository)
	publisher := new(MockPublisher)
	service := services.NewLikeService(likes, publisher)
	ctx := context.Background()

	likes.On("RemoveLike", ctx, uint(1), uint(7)).Return(models.LikeStatus{IsLiked: false, LikeCount: 2}, true, nil).Once()
	publisher.On("PublishLikeEvent", mock.Anything).Return(errors.New("broker down")).Once()

	status, err := service.Unlike(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, models.LikeStatus{IsLiked: false, LikeCount: 2}, status)
	publisher.AssertExpectations(t)
}

func TestLikeService_WithoutPublisher(t *testing.T) {
	likes := new(MockLikeRepository)
	service := services.NewLikeService(likes, nil)
	ctx := context.Background()

	likes.On("AddLike", ctx, uint(1), uint(7)).Return(models.LikeStatus{IsLiked: true, LikeCount: 1}, true, nil).Once()

	_, err := service.Like(ctx, 1, 7)
	assert.NoError(t, err)
}

func TestLikeService_PropagatesBoundViolation(t *testing.T) {
	likes := new(MockLikeRepository)
	publisher := new(MockPublisher)
	service := services.NewLikeService(likes, publisher)
	ctx := context.Background()

	likes.On("AddLike", ctx, uint(1), uint(7)).
		Return(models.LikeStatus{}, false, fmt.Errorf("%w: product 1", models.ErrLikeCountMaximumExceeded)).Once()

	_, err := service.Like(ctx, 1, 7)
	assert.ErrorIs(t, err, models.ErrLikeCountMaximumExceeded)
	publisher.AssertNotCalled(t, "PublishLikeEvent", mock.Anything)
}

func TestLikeService_Status(t *testing.T) {
	likes := new(MockLikeRepository)
	publisher := new(MockPublisher)
	service := services.NewLikeService(likes, publisher)
	ctx := context.Background()

	likes.On("Status", ctx, uint(1), uint(7)).Return(models.LikeStatus{IsLiked: true, LikeCount: 4}, nil).Once()

	status, err := service.Status(ctx, 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, models.LikeStatus{IsLiked: true, LikeCount: 4}, status)
	likes.AssertExpectations(t)
	publisher.AssertNotCalled(t, "PublishLikeEvent", mock.Anything)
}
