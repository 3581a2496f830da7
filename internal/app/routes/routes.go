package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/controllers"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	announcementController *controllers.AnnouncementController,
	commentController *controllers.CommentController,
	reactionController *controllers.ReactionController,
	commentLimiter *middleware.RateLimiter,
) {
	// API version group
	v1 := router.Group("/api/v1")

	announcements := v1.Group("/announcements")
	{
		announcements.POST("", announcementController.Create)
		announcements.GET("", announcementController.List)
		announcements.PATCH("/:id", announcementController.UpdateStatus)

		// Comments: creation is rate limited, deletion needs an identity
		announcements.POST("/:id/comments", commentLimiter.Limit(), commentController.Add)
		announcements.GET("/:id/comments", commentController.List)
		announcements.DELETE("/:id/comments/:commentId", middleware.RequireUserID(), commentController.Delete)

		// Reactions: all operations are keyed by the identity header
		announcements.POST("/:id/reactions", middleware.RequireUserID(), reactionController.Set)
		announcements.DELETE("/:id/reactions", middleware.RequireUserID(), reactionController.Remove)
		announcements.GET("/:id/user-reaction", middleware.RequireUserID(), reactionController.GetUserReaction)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
