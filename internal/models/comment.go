package models

import (
	"time"
)

type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PostID  uint   `gorm:"not null;index" json:"post_id"`
	Content string `gorm:"type:text;not null" json:"content"`

	// Same author snapshot pattern as Post.
	UserID    string `gorm:"size:120;not null;index" json:"user_id"`
	UserName  string `gorm:"size:120;not null" json:"user_name"`
	UserImage string `gorm:"size:500;not null" json:"user_image"`

	CreatedAt time.Time `json:"created_at"`
}
