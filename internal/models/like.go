package models

import (
	"time"
)

// Like records one user liking one post. The composite unique index makes
// "at most one like per (user, post)" a schema guarantee, so a concurrent
// double-toggle cannot create duplicates.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:120;not null;index;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
