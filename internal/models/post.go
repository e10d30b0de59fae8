package models

import (
	"time"
)

type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`

	// Author snapshot taken from the session at creation time. There is no
	// user table; identity lives with the OAuth provider and these columns
	// stay as they were even if the profile changes later.
	UserID    string `gorm:"size:120;not null;index" json:"user_id"` // owner email
	UserName  string `gorm:"size:120;not null" json:"user_name"`
	UserImage string `gorm:"size:500;not null" json:"user_image"`

	CoverImageURL string `gorm:"size:500" json:"cover_image_url"`
	Tags          string `gorm:"size:200" json:"tags"`

	Version   int       `gorm:"not null;default:0" json:"version"` // bumped on every edit
	CreatedAt time.Time `json:"created_at"`

	Comments []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments"`
	Likes    []Like    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"likes"`

	// Not database columns, filled per query
	LikeCount    int `gorm:"-" json:"like_count"`
	CommentCount int `gorm:"-" json:"comment_count"`
}
