package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/services"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/middleware"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/helpers"
)

// CommentController handles comment endpoints
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// Add handles POST /announcements/:id/comments. The identity header is
// optional here; the comment carries the free-text author name instead.
func (c *CommentController) Add(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	comment, err := c.commentService.Add(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// List handles GET /announcements/:id/comments?cursor&limit
func (c *CommentController) List(ctx *gin.Context) {
	cursor, limit := helpers.ParseCursorParams(ctx)

	page, err := c.commentService.ListPage(ctx, ctx.Param("id"), cursor, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// Delete handles DELETE /announcements/:id/comments/:commentId
func (c *CommentController) Delete(ctx *gin.Context) {
	err := c.commentService.Delete(ctx, ctx.Param("id"), ctx.Param("commentId"), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
