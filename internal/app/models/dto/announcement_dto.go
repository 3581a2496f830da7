package dto

import (
	"time"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
)

// CreateAnnouncementRequest is the body for POST /announcements
type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// UpdateAnnouncementRequest is the body for PATCH /announcements/:id
type UpdateAnnouncementRequest struct {
	Status string `json:"status" binding:"required,oneof=active closed"`
}

// AnnouncementResponse represents a single announcement
type AnnouncementResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AnnouncementSummaryResponse is an announcement enriched with activity
// aggregates, as returned by the summary listing.
type AnnouncementSummaryResponse struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description,omitempty"`
	Status         string                `json:"status"`
	CreatedAt      time.Time             `json:"createdAt"`
	CommentCount   int                   `json:"commentCount"`
	Reactions      models.ReactionCounts `json:"reactions"`
	LastActivityAt time.Time             `json:"lastActivityAt"`
}

// SummaryListResult bundles the sorted summaries with the ETag computed
// over them.
type SummaryListResult struct {
	Summaries []AnnouncementSummaryResponse
	ETag      string
}

// NewAnnouncementResponse maps a domain announcement to its response shape.
func NewAnnouncementResponse(a *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}
