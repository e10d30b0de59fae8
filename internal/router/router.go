package router

import (
	"inkwell/internal/config"
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// New builds the engine with sessions, middleware and every route wired.
// Template rendering and static assets are attached by the caller.
func New(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inkwell_session", store))
	r.Use(middleware.LoadUser(cfg))

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg)
	feedHandler := handlers.NewFeedHandler(cfg)
	postHandler := handlers.NewPostHandler(cfg)
	commentHandler := handlers.NewCommentHandler(cfg)
	likeHandler := handlers.NewLikeHandler()
	adminHandler := handlers.NewAdminHandler(cfg)

	// Public Routes
	r.GET("/", feedHandler.Index)
	r.GET("/post/:post_id", feedHandler.ViewPost)
	r.GET("/login", authHandler.Login)
	r.GET("/authorize", authHandler.Authorize)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/post", postHandler.Create)
		authorized.POST("/like/:post_id", likeHandler.Toggle)
		authorized.POST("/post/:post_id/comment", commentHandler.Create)
		authorized.POST("/delete_post/:post_id", postHandler.Delete)
		authorized.POST("/delete_comment/:comment_id", commentHandler.Delete)
		authorized.GET("/edit_post/:post_id", postHandler.ShowEdit)
		authorized.POST("/edit_post/:post_id", postHandler.Update)
	}

	// Admin Routes
	admin := r.Group("/")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/adminpanel", adminHandler.Panel)
		admin.GET("/delete_all_comments", commentHandler.DeleteAll)
		admin.POST("/delete_all_comments", commentHandler.DeleteAll)
		admin.GET("/delete_all_posts", postHandler.DeleteAll)
		admin.POST("/delete_all_posts", postHandler.DeleteAll)
	}

	return r
}
