package handlers

import (
	"html/template"
	"net/http"

	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	cfg *config.Config
}

func NewFeedHandler(cfg *config.Config) *FeedHandler {
	return &FeedHandler{cfg: cfg}
}

// postsByLikes returns posts ordered by descending like count, ties broken by
// ascending id. The aggregate is recomputed on every request.
func postsByLikes(extraCond string, args ...interface{}) []models.Post {
	var posts []models.Post
	q := db.DB.Model(&models.Post{}).
		Select("posts.*").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Group("posts.id").
		Order("COUNT(likes.id) DESC, posts.id ASC")
	if extraCond != "" {
		q = q.Where(extraCond, args...)
	}
	q.Find(&posts)
	return posts
}

// fillLikeCounts batch-fills the LikeCount field of the given posts
func fillLikeCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	db.DB.Model(&models.Like{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].LikeCount = countMap[posts[i].ID]
	}
}

// fillCommentCounts batch-fills the CommentCount field of the given posts
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

// Index renders the public feed, most-liked posts first.
func (h *FeedHandler) Index(c *gin.Context) {
	posts := postsByLikes("")
	fillLikeCounts(posts)
	fillCommentCounts(posts)

	name := "Guest"
	if user := middleware.CurrentUser(c); user != nil {
		name = user.Name
	}

	Render(c, http.StatusOK, "feed/index.html", gin.H{
		"Title":      "Home",
		"Posts":      posts,
		"Name":       name,
		"AdminEmail": h.cfg.AdminEmail,
	})
}

// ViewPost renders a single post with its comments.
func (h *FeedHandler) ViewPost(c *gin.Context) {
	postID := utils.StringToUint(c.Param("post_id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	var comments []models.Comment
	db.DB.Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments)

	type viewComment struct {
		models.Comment
		ContentHTML template.HTML
	}
	viewComments := make([]viewComment, len(comments))
	for i, com := range comments {
		viewComments[i] = viewComment{
			Comment:     com,
			ContentHTML: utils.RenderMarkdownCached("comment", com.ID, 0, com.Content),
		}
	}

	var likeCount int64
	db.DB.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeCount)
	post.LikeCount = int(likeCount)

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Title":       post.Title,
		"Post":        post,
		"PostContent": utils.RenderMarkdownCached("post", post.ID, post.Version, post.Content),
		"Comments":    viewComments,
		"AdminEmail":  h.cfg.AdminEmail,
	})
}
