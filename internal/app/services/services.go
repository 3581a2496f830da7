package services

import (
	"github.com/rs/zerolog"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/repositories"
)

// Services bundles all business-logic services for dependency injection.
type Services struct {
	Announcement AnnouncementService
	Comment      CommentService
	Reaction     ReactionService
}

// NewServices wires every service against the shared in-memory stores.
// commentQuota is the per-author-per-announcement comment cap.
func NewServices(repos *repositories.Repositories, commentQuota int, logger zerolog.Logger) *Services {
	return &Services{
		Announcement: NewAnnouncementService(repos.Announcements, repos.Comments, repos.Reactions, logger),
		Comment:      NewCommentService(repos.Announcements, repos.Comments, commentQuota, logger),
		Reaction:     NewReactionService(repos.Announcements, repos.Reactions, logger),
	}
}
