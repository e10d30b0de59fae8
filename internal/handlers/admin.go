package handlers

import (
	"net/http"

	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cfg *config.Config
}

func NewAdminHandler(cfg *config.Config) *AdminHandler {
	return &AdminHandler{cfg: cfg}
}

// Panel assembles the moderation view: the admin's own posts newest-first,
// everyone else's posts ranked by likes, and every comment system-wide.
func (h *AdminHandler) Panel(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*middleware.SessionUser)

	var ownPosts []models.Post
	db.DB.Where("user_id = ?", user.Email).Order("created_at DESC").Find(&ownPosts)
	fillLikeCounts(ownPosts)

	otherPosts := postsByLikes("posts.user_id <> ?", user.Email)
	fillLikeCounts(otherPosts)
	fillCommentCounts(otherPosts)

	var comments []models.Comment
	db.DB.Order("created_at ASC").Find(&comments)

	Render(c, http.StatusOK, "admin/panel.html", gin.H{
		"Title":      "Admin panel",
		"Name":       user.Name,
		"OwnPosts":   ownPosts,
		"OtherPosts": otherPosts,
		"Comments":   comments,
		"AdminEmail": h.cfg.AdminEmail,
	})
}
