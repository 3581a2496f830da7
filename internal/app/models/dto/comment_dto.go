package dto

import (
	"time"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
)

// CreateCommentRequest is the body for POST /announcements/:id/comments
type CreateCommentRequest struct {
	AuthorName string `json:"authorName" binding:"required,max=100"`
	Text       string `json:"text" binding:"required,max=1000"`
}

// CommentResponse represents a single comment
type CommentResponse struct {
	ID             string    `json:"id"`
	AnnouncementID string    `json:"announcementId"`
	AuthorName     string    `json:"authorName"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CommentPageResponse is one cursor page of comments, newest first.
// NextCursor is present only when the page was full and more may follow.
type CommentPageResponse struct {
	Comments   []CommentResponse `json:"comments"`
	NextCursor *string           `json:"nextCursor,omitempty"`
}

// NewCommentResponse maps a domain comment to its response shape.
func NewCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:             c.ID,
		AnnouncementID: c.AnnouncementID,
		AuthorName:     c.AuthorName,
		Text:           c.Text,
		CreatedAt:      c.CreatedAt,
	}
}
