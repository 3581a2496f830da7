package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/repositories"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
)

// ReactionService defines the interface for reaction operations.
//
// Per (announcement, user) the reaction acts as a single movable pointer
// over the states {none, up, down, heart}: Set moves it, Remove returns it
// to none, GetUserReaction reads it.
type ReactionService interface {
	Set(ctx context.Context, announcementID, userID string, req *dto.SetReactionRequest) (*dto.ReactionResponse, error)
	Remove(ctx context.Context, announcementID, userID string) error
	GetUserReaction(ctx context.Context, announcementID, userID string) (*dto.UserReactionResponse, error)
}

type reactionServiceImpl struct {
	announcementRepo *repositories.AnnouncementRepository
	reactionRepo     *repositories.ReactionRepository
	logger           zerolog.Logger
}

// NewReactionService creates a new ReactionService
func NewReactionService(
	announcementRepo *repositories.AnnouncementRepository,
	reactionRepo *repositories.ReactionRepository,
	logger zerolog.Logger,
) ReactionService {
	return &reactionServiceImpl{
		announcementRepo: announcementRepo,
		reactionRepo:     reactionRepo,
		logger:           logger,
	}
}

// Set replaces the user's current reaction with a fresh row of the
// requested type. Calling with the type the user already holds is not a
// toggle-off; it still replaces the row with a new ID and timestamp.
func (s *reactionServiceImpl) Set(ctx context.Context, announcementID, userID string, req *dto.SetReactionRequest) (*dto.ReactionResponse, error) {
	if !s.announcementRepo.Exists(announcementID) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrAnnouncementNotFound, "Announcement not found")
	}

	reactionType := models.ReactionType(req.Type)
	if !reactionType.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "reaction type must be up, down or heart")
	}

	reaction := &models.Reaction{
		ID:             uuid.NewString(),
		AnnouncementID: announcementID,
		UserID:         userID,
		Type:           reactionType,
		CreatedAt:      time.Now(),
	}
	s.reactionRepo.Set(reaction)

	s.logger.Info().
		Str("announcementId", announcementID).
		Str("userId", userID).
		Str("type", string(reactionType)).
		Msg("Reaction set")

	resp := dto.NewReactionResponse(reaction)
	return &resp, nil
}

// Remove toggles the user's reaction off. Removing when no reaction exists
// is NotFound, matching the terminal transition back to none.
func (s *reactionServiceImpl) Remove(ctx context.Context, announcementID, userID string) error {
	if !s.announcementRepo.Exists(announcementID) {
		return apperrors.NewNotFoundError(apperrors.ErrAnnouncementNotFound, "Announcement not found")
	}

	if err := s.reactionRepo.Remove(announcementID, userID); err != nil {
		return apperrors.NewNotFoundError(apperrors.ErrReactionNotFound, "No reaction to remove")
	}

	s.logger.Info().
		Str("announcementId", announcementID).
		Str("userId", userID).
		Msg("Reaction removed")
	return nil
}

// GetUserReaction returns the user's current reaction type, or an empty
// result when none exists. Only an unknown announcement is an error.
func (s *reactionServiceImpl) GetUserReaction(ctx context.Context, announcementID, userID string) (*dto.UserReactionResponse, error) {
	if !s.announcementRepo.Exists(announcementID) {
		return nil, apperrors.NewNotFoundError(apperrors.ErrAnnouncementNotFound, "Announcement not found")
	}

	resp := &dto.UserReactionResponse{}
	if reaction, ok := s.reactionRepo.Get(announcementID, userID); ok {
		t := string(reaction.Type)
		resp.Reaction = &t
	}
	return resp, nil
}
