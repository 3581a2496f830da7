package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/repositories"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/helpers"
)

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	List(ctx context.Context) ([]dto.AnnouncementResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	SummarizeAll(ctx context.Context) (*dto.SummaryListResult, error)
}

type announcementServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
	commentRepo      *repositories.CommentRepository
	reactionRepo     *repositories.ReactionRepository
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(
	announcementRepo *repositories.AnnouncementRepository,
	commentRepo *repositories.CommentRepository,
	reactionRepo *repositories.ReactionRepository,
	logger zerolog.Logger,
) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		commentRepo:      commentRepo,
		reactionRepo:     reactionRepo,
		logger:           logger,
	}
}

// Create stores a new active announcement with a fresh ID.
func (s *announcementServiceImpl) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	now := time.Now()
	announcement := &models.Announcement{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      models.AnnouncementStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.announcementRepo.Insert(announcement)

	s.logger.Info().
		Str("announcementId", announcement.ID).
		Str("title", announcement.Title).
		Msg("Announcement created")

	resp := dto.NewAnnouncementResponse(announcement)
	return &resp, nil
}

// List returns all announcements, newest first.
func (s *announcementServiceImpl) List(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	announcements := s.announcementRepo.List()

	responses := make([]dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		responses = append(responses, dto.NewAnnouncementResponse(&announcements[i]))
	}
	return responses, nil
}

// UpdateStatus changes the announcement status in place.
func (s *announcementServiceImpl) UpdateStatus(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	status := models.AnnouncementStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "status must be active or closed")
	}

	updated, err := s.announcementRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, apperrors.NewNotFoundError(apperrors.ErrAnnouncementNotFound, "Announcement not found")
	}

	s.logger.Info().
		Str("announcementId", id).
		Str("status", string(status)).
		Msg("Announcement status updated")

	resp := dto.NewAnnouncementResponse(&updated)
	return &resp, nil
}

// SummarizeAll builds the activity summary for every announcement, sorted by
// last activity, and the ETag over the whole board state. lastActivityAt is
// the maximum of the announcement's own creation and status-change times,
// its newest comment and its newest reaction row.
func (s *announcementServiceImpl) SummarizeAll(ctx context.Context) (*dto.SummaryListResult, error) {
	announcements := s.announcementRepo.List()

	summaries := make([]dto.AnnouncementSummaryResponse, 0, len(announcements))
	for i := range announcements {
		a := &announcements[i]

		// A status flip counts as activity, so the baseline is the later
		// of creation and the last status change.
		lastActivity := a.CreatedAt
		if a.UpdatedAt.After(lastActivity) {
			lastActivity = a.UpdatedAt
		}
		if newest, ok := s.commentRepo.NewestCreatedAt(a.ID); ok && newest.After(lastActivity) {
			lastActivity = newest
		}
		if newest, ok := s.reactionRepo.NewestCreatedAt(a.ID); ok && newest.After(lastActivity) {
			lastActivity = newest
		}

		summaries = append(summaries, dto.AnnouncementSummaryResponse{
			ID:             a.ID,
			Title:          a.Title,
			Description:    a.Description,
			Status:         string(a.Status),
			CreatedAt:      a.CreatedAt,
			CommentCount:   s.commentRepo.Count(a.ID),
			Reactions:      s.reactionRepo.Counts(a.ID),
			LastActivityAt: lastActivity,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].LastActivityAt.Equal(summaries[j].LastActivityAt) {
			return summaries[i].LastActivityAt.After(summaries[j].LastActivityAt)
		}
		return summaries[i].ID < summaries[j].ID
	})

	return &dto.SummaryListResult{
		Summaries: summaries,
		ETag:      helpers.ComputeSummaryETag(summaries),
	}, nil
}
