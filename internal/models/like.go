package models

import "time"

// Like records that a member likes a product. At most one per pair.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_like_product_member"`
	MemberID  uint      `json:"member_id" gorm:"not null;uniqueIndex:idx_like_product_member"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeStatus is the outcome of a like or unlike request.
type LikeStatus struct {
	IsLiked   bool `json:"is_liked"`
	LikeCount int  `json:"like_count"`
}

// LikeEvent is published whenever a like is added or removed.
type LikeEvent struct {
	EventID    string    `json:"event_id"`
	ProductID  uint      `json:"product_id"`
	MemberID   uint      `json:"member_id"`
	Liked      bool      `json:"liked"`
	LikeCount  int       `json:"like_count"`
	OccurredAt time.Time `json:"occurred_at"`
}
