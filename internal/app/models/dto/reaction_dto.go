package dto

import (
	"time"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
)

// SetReactionRequest is the body for POST /announcements/:id/reactions
type SetReactionRequest struct {
	Type string `json:"type" binding:"required,oneof=up down heart"`
}

// ReactionResponse represents the caller's current reaction row
type ReactionResponse struct {
	ID             string    `json:"id"`
	AnnouncementID string    `json:"announcementId"`
	UserID         string    `json:"userId"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserReactionResponse is the body for GET /announcements/:id/user-reaction.
// Reaction is nil when the user holds no reaction, which is a normal result.
type UserReactionResponse struct {
	Reaction *string `json:"reaction,omitempty"`
}

// NewReactionResponse maps a domain reaction to its response shape.
func NewReactionResponse(r *models.Reaction) ReactionResponse {
	return ReactionResponse{
		ID:             r.ID,
		AnnouncementID: r.AnnouncementID,
		UserID:         r.UserID,
		Type:           string(r.Type),
		CreatedAt:      r.CreatedAt,
	}
}
