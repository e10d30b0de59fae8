package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct {
	cfg *config.Config
}

func NewCommentHandler(cfg *config.Config) *CommentHandler {
	return &CommentHandler{cfg: cfg}
}

// Create adds a comment to an existing post, snapshotting the session
// identity into the row.
func (h *CommentHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*middleware.SessionUser)
	postID := utils.StringToUint(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	content := c.PostForm("content")
	if strings.TrimSpace(content) == "" {
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
		return
	}

	comment := models.Comment{
		PostID:    post.ID,
		Content:   content,
		UserID:    user.Email,
		UserName:  user.Name,
		UserImage: user.Image,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

// Delete removes a single comment. Owner or admin only.
func (h *CommentHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*middleware.SessionUser)
	commentID := utils.StringToUint(c.Param("comment_id"))

	var comment models.Comment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		// Already gone, nothing to do
		c.Redirect(http.StatusFound, "/")
		return
	}

	if !canModify(user, comment.UserID) {
		RenderError(c, http.StatusForbidden, "You cannot delete this comment")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	Flash(c, "Comment deleted successfully")
	c.Redirect(http.StatusFound, "/")
}

// DeleteAll clears the whole comment table. Admin only (enforced by the
// route group).
func (h *CommentHandler) DeleteAll(c *gin.Context) {
	g := db.DB.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := g.Delete(&models.Comment{}).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to delete comments")
		return
	}

	Flash(c, "All comments deleted successfully")
	c.Redirect(http.StatusFound, "/adminpanel")
}
