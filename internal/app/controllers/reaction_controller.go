package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/services"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/middleware"
)

// ReactionController handles reaction endpoints
type ReactionController struct {
	reactionService services.ReactionService
}

// NewReactionController creates a new ReactionController
func NewReactionController(reactionService services.ReactionService) *ReactionController {
	return &ReactionController{
		reactionService: reactionService,
	}
}

// Set handles POST /announcements/:id/reactions
func (c *ReactionController) Set(ctx *gin.Context) {
	var req dto.SetReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	reaction, err := c.reactionService.Set(ctx, ctx.Param("id"), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reaction)
}

// Remove handles DELETE /announcements/:id/reactions
func (c *ReactionController) Remove(ctx *gin.Context) {
	err := c.reactionService.Remove(ctx, ctx.Param("id"), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetUserReaction handles GET /announcements/:id/user-reaction
func (c *ReactionController) GetUserReaction(ctx *gin.Context) {
	reaction, err := c.reactionService.GetUserReaction(ctx, ctx.Param("id"), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reaction)
}
