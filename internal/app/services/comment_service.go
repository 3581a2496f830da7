package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/repositories"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/helpers"
)

// CommentService defines the interface for comment operations
type CommentService interface {
	Add(ctx context.Context, announcementID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, announcementID, commentID, userID string) error
	ListPage(ctx context.Context, announcementID, cursor string, limit int) (*dto.CommentPageResponse, error)
}

type commentServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
	commentRepo      *repositories.CommentRepository
	quota            int
	logger           zerolog.Logger
}

// NewCommentService creates a new CommentService. quota is the maximum
// number of comments one author name may hold per announcement.
func NewCommentService(
	announcementRepo *repositories.AnnouncementRepository,
	commentRepo *repositories.CommentRepository,
	quota int,
	logger zerolog.Logger,
) CommentService {
	return &commentServiceImpl{
		announcementRepo: announcementRepo,
		commentRepo:      commentRepo,
		quota:            quota,
		logger:           logger,
	}
}

// Add inserts a new comment, enforcing the per-author quota. The quota is
// keyed on the free-text author name, not a stable identity: two people
// sharing a display name share a quota, and different names bypass it. That
// matches the product behavior and is called out as a weak invariant.
func (s *commentServiceImpl) Add(ctx context.Context, announcementID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if !s.announcementRepo.Exists(announcementID) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrAnnouncementNotFound, "Announcement not found")
	}

	comment := &models.Comment{
		ID:             uuid.NewString(),
		AnnouncementID: announcementID,
		AuthorName:     req.AuthorName,
		Text:           req.Text,
		CreatedAt:      time.Now(),
	}

	if err := s.commentRepo.InsertWithQuota(comment, s.quota); err != nil {
		return nil, apperrors.NewQuotaExceededError(
			fmt.Sprintf("Author %q already has %d comments on this announcement", req.AuthorName, s.quota))
	}

	s.logger.Info().
		Str("announcementId", announcementID).
		Str("commentId", comment.ID).
		Str("authorName", comment.AuthorName).
		Msg("Comment added")

	resp := dto.NewCommentResponse(comment)
	return &resp, nil
}

// Delete removes the comment matching both IDs. Ownership is not enforced:
// userID is accepted and logged but any caller may delete any comment.
func (s *commentServiceImpl) Delete(ctx context.Context, announcementID, commentID, userID string) error {
	if !s.announcementRepo.Exists(announcementID) {
		return apperrors.NewNotFoundError(apperrors.ErrAnnouncementNotFound, "Announcement not found")
	}

	if err := s.commentRepo.Delete(announcementID, commentID); err != nil {
		return apperrors.NewNotFoundError(apperrors.ErrCommentNotFound, "Comment not found")
	}

	s.logger.Info().
		Str("announcementId", announcementID).
		Str("commentId", commentID).
		Str("userId", userID).
		Msg("Comment deleted")
	return nil
}

// ListPage returns one cursor page of comments, newest first. The cursor is
// the ID of the last comment the caller saw; an unknown cursor restarts
// from page one.
func (s *commentServiceImpl) ListPage(ctx context.Context, announcementID, cursor string, limit int) (*dto.CommentPageResponse, error) {
	if !s.announcementRepo.Exists(announcementID) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrAnnouncementNotFound, "Announcement not found")
	}

	if limit <= 0 {
		limit = helpers.DefaultPageSize
	}

	comments := s.commentRepo.ListByAnnouncement(announcementID)
	page, nextCursor := helpers.PageAfterCursor(comments, cursor, limit)

	responses := make([]dto.CommentResponse, 0, len(page))
	for _, c := range page {
		responses = append(responses, dto.NewCommentResponse(c))
	}

	resp := &dto.CommentPageResponse{Comments: responses}
	if nextCursor != "" {
		resp.NextCursor = &nextCursor
	}
	return resp, nil
}
