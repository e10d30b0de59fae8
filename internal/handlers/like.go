package handlers

import (
	"net/http"

	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type LikeHandler struct{}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{}
}

// Toggle likes or unlikes a post. The insert goes through ON CONFLICT DO
// NOTHING against the unique (user_id, post_id) index: zero inserted rows
// means the like already existed, so the toggle removes it. Two concurrent
// toggles can therefore never leave duplicate rows behind.
func (h *LikeHandler) Toggle(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*middleware.SessionUser)
	postID := utils.StringToUint(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	like := models.Like{
		UserID: user.Email,
		PostID: post.ID,
	}

	res := db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if res.Error != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to save like")
		return
	}

	if res.RowsAffected == 0 {
		// Already liked, this toggle is an unlike
		if err := db.DB.Where("user_id = ? AND post_id = ?", user.Email, post.ID).
			Delete(&models.Like{}).Error; err != nil {
			RenderError(c, http.StatusInternalServerError, "Failed to remove like")
			return
		}
	}

	c.Redirect(http.StatusFound, "/")
}
