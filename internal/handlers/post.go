package handlers

import (
	"net/http"
	"strings"

	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxCoverSize = 10 * 1024 * 1024

type PostHandler struct {
	cfg    *config.Config
	images *services.ImageStore
}

func NewPostHandler(cfg *config.Config) *PostHandler {
	return &PostHandler{
		cfg:    cfg,
		images: services.NewImageStore(cfg.UploadDir),
	}
}

// canModify implements the unified gate for mutating actions: the resource
// owner or the administrator.
func canModify(user *middleware.SessionUser, ownerEmail string) bool {
	return user.Email == ownerEmail || user.IsAdmin
}

// Create publishes a new post, snapshotting the session identity into the
// row. The cover image, when present, is written to the public static dir.
func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*middleware.SessionUser)

	title := strings.TrimSpace(c.PostForm("title"))
	content := c.PostForm("content")
	tags := c.PostForm("tags")

	if title == "" || strings.TrimSpace(content) == "" {
		RenderError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	coverURL := ""
	file, header, err := c.Request.FormFile("cover_image")
	if err == nil {
		defer file.Close()

		if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			RenderError(c, http.StatusBadRequest, "Cover must be an image file")
			return
		}
		if header.Size > maxCoverSize {
			RenderError(c, http.StatusBadRequest, "Cover image must not exceed 10MB")
			return
		}

		coverURL, err = h.images.SaveCover(file, header)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Failed to store cover image")
			return
		}
	}

	post := models.Post{
		Title:         title,
		Content:       content,
		Tags:          tags,
		UserID:        user.Email,
		UserName:      user.Name,
		UserImage:     user.Image,
		CoverImageURL: coverURL,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	Flash(c, "Post created successfully")
	c.Redirect(http.StatusFound, "/adminpanel")
}

// ShowEdit renders the edit form carrying the post's current version.
func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*middleware.SessionUser)
	postID := utils.StringToUint(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !canModify(user, post.UserID) {
		RenderError(c, http.StatusForbidden, "You cannot edit this post")
		return
	}

	Render(c, http.StatusOK, "post/edit.html", gin.H{
		"Title": "Edit post",
		"Post":  post,
	})
}

// Update overwrites the content when a non-empty value is supplied, guarded
// by an optimistic version check so concurrent edits cannot silently clobber
// each other.
func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*middleware.SessionUser)
	postID := utils.StringToUint(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !canModify(user, post.UserID) {
		RenderError(c, http.StatusForbidden, "You cannot edit this post")
		return
	}

	content := c.PostForm("content")
	if content == "" {
		// Nothing to change, other fields stay untouched
		Flash(c, "Post edited successfully")
		c.Redirect(http.StatusFound, "/adminpanel")
		return
	}

	version := utils.StringToInt(c.PostForm("version"))
	res := db.DB.Model(&models.Post{}).
		Where("id = ? AND version = ?", post.ID, version).
		Updates(map[string]interface{}{
			"content": content,
			"version": version + 1,
		})
	if res.Error != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to save post")
		return
	}
	if res.RowsAffected == 0 {
		RenderError(c, http.StatusConflict, "The post was changed by someone else, reload and retry")
		return
	}

	Flash(c, "Post edited successfully")
	c.Redirect(http.StatusFound, "/adminpanel")
}

// Delete removes a post together with its comments and likes in one
// transaction.
func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*middleware.SessionUser)
	postID := utils.StringToUint(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if !canModify(user, post.UserID) {
		RenderError(c, http.StatusForbidden, "You cannot delete this post")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	Flash(c, "Post deleted successfully")
	c.Redirect(http.StatusFound, "/adminpanel")
}

// DeleteAll clears every post, with likes and comments going in the same
// transaction so no orphan rows survive. Admin only (enforced by the route
// group).
func (h *PostHandler) DeleteAll(c *gin.Context) {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		g := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := g.Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := g.Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return g.Delete(&models.Post{}).Error
	})
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to delete posts")
		return
	}

	Flash(c, "All posts deleted successfully")
	c.Redirect(http.StatusFound, "/adminpanel")
}
