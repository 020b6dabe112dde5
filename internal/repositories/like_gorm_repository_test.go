package repositories_test

import (
	"context"
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_IdempotentPerMember(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	likes := repositories.NewGORMLikeRepository(db)
	products := repositories.NewGORMProductRepository(db)
	ctx := context.Background()

	status, changed, err := likes.AddLike(ctx, f.P1.ID, 10)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.LikeStatus{IsLiked: true, LikeCount: 1}, status)

	status, changed, err = likes.AddLike(ctx, f.P1.ID, 10)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, models.LikeStatus{IsLiked: true, LikeCount: 1}, status)

	status, changed, err = likes.AddLike(ctx, f.P1.ID, 11)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2, status.LikeCount)

	current, err := likes.Status(ctx, f.P1.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, models.LikeStatus{IsLiked: true, LikeCount: 2}, current)

	current, err = likes.Status(ctx, f.P1.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, models.LikeStatus{IsLiked: false, LikeCount: 2}, current)

	status, changed, err = likes.RemoveLike(ctx, f.P1.ID, 10)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.LikeStatus{IsLiked: false, LikeCount: 1}, status)

	status, changed, err = likes.RemoveLike(ctx, f.P1.ID, 10)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, models.LikeStatus{IsLiked: false, LikeCount: 1}, status)

	stored, err := products.GetByID(ctx, f.P1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.LikeCount)
}

func TestLikeRepository_UnknownProduct(t *testing.T) {
	db := testutil.NewDB(t)
	likes := repositories.NewGORMLikeRepository(db)

	_, _, err := likes.AddLike(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	_, _, err = likes.RemoveLike(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	_, err = likes.Status(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestLikeRepository_AtMaximumRollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	likes := repositories.NewGORMLikeRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", f.P3.ID).UpdateColumn("like_count", models.MaxLikeCount).Error)

	_, _, err := likes.AddLike(ctx, f.P3.ID, 10)
	assert.ErrorIs(t, err, models.ErrLikeCountMaximumExceeded)

	current, err := likes.Status(ctx, f.P3.ID, 10)
	require.NoError(t, err)
	assert.False(t, current.IsLiked, "like row is rolled back")
	assert.Equal(t, models.MaxLikeCount, current.LikeCount)
}

func TestLikeRepository_UnlikeAtZeroRollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	likes := repositories.NewGORMLikeRepository(db)
	ctx := context.Background()

	// A like row without a matching count
	require.NoError(t, db.Create(&models.Like{ProductID: f.P2.ID, MemberID: 10}).Error)

	_, _, err := likes.RemoveLike(ctx, f.P2.ID, 10)
	assert.ErrorIs(t, err, models.ErrLikeCountMinimumExceeded)

	current, err := likes.Status(ctx, f.P2.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, models.LikeStatus{IsLiked: true, LikeCount: 0}, current)
}
