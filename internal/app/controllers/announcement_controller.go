package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/services"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/middleware"
)

// AnnouncementController handles announcement endpoints
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// Create handles POST /announcements
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	announcement, err := c.announcementService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, announcement)
}

// List handles GET /announcements. The response is the summary list sorted
// by last activity; the ETag header covers the whole board state, and a
// matching If-None-Match short-circuits to 304.
func (c *AnnouncementController) List(ctx *gin.Context) {
	result, err := c.announcementService.SummarizeAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("ETag", result.ETag)
	if ctx.GetHeader("If-None-Match") == result.ETag {
		ctx.Status(http.StatusNotModified)
		return
	}

	ctx.JSON(http.StatusOK, result.Summaries)
}

// UpdateStatus handles PATCH /announcements/:id
func (c *AnnouncementController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	announcement, err := c.announcementService.UpdateStatus(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcement)
}
