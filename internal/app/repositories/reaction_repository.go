package repositories

import (
	"sync"
	"time"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
)

// ReactionRepository stores at most one reaction row per
// (announcement, user) pair plus a derived per-type counter index. The
// counter sets always mirror the rows: a user appears in exactly the set of
// the type they currently hold, or in none.
type ReactionRepository struct {
	mu       sync.RWMutex
	rows     map[string]map[string]*models.Reaction
	counters map[string]map[models.ReactionType]map[string]struct{}
}

// NewReactionRepository creates an empty reaction store.
func NewReactionRepository() *ReactionRepository {
	return &ReactionRepository{
		rows:     make(map[string]map[string]*models.Reaction),
		counters: make(map[string]map[models.ReactionType]map[string]struct{}),
	}
}

// Set replaces the user's current reaction with the given row. The removal
// of the old row and the insert of the new one happen under a single lock
// acquisition, so concurrent toggles for the same user cannot leave two
// rows behind. Setting the same type again still replaces the row (fresh ID
// and timestamp); toggling off is Remove.
func (r *ReactionRepository) Set(reaction *models.Reaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.rows[reaction.AnnouncementID]
	if users == nil {
		users = make(map[string]*models.Reaction)
		r.rows[reaction.AnnouncementID] = users
	}

	if old, ok := users[reaction.UserID]; ok {
		r.removeFromCounter(old.AnnouncementID, old.Type, old.UserID)
	}

	stored := *reaction
	users[reaction.UserID] = &stored
	r.addToCounter(reaction.AnnouncementID, reaction.Type, reaction.UserID)
}

// Remove deletes the user's current reaction, or returns
// ErrReactionNotFound when none exists.
func (r *ReactionRepository) Remove(announcementID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.rows[announcementID]
	old, ok := users[userID]
	if !ok {
		return apperrors.ErrReactionNotFound
	}

	delete(users, userID)
	r.removeFromCounter(announcementID, old.Type, userID)
	return nil
}

// Get returns a copy of the user's current reaction, if any.
func (r *ReactionRepository) Get(announcementID, userID string) (models.Reaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reaction, ok := r.rows[announcementID][userID]
	if !ok {
		return models.Reaction{}, false
	}
	return *reaction, true
}

// Counts returns the counter-set sizes for the announcement.
func (r *ReactionRepository) Counts(announcementID string) models.ReactionCounts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byType := r.counters[announcementID]
	return models.ReactionCounts{
		Up:    len(byType[models.ReactionUp]),
		Down:  len(byType[models.ReactionDown]),
		Heart: len(byType[models.ReactionHeart]),
	}
}

// NewestCreatedAt returns the timestamp of the most recent reaction row on
// the announcement, if any.
func (r *ReactionRepository) NewestCreatedAt(announcementID string) (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var newest time.Time
	found := false
	for _, reaction := range r.rows[announcementID] {
		if reaction.CreatedAt.After(newest) {
			newest = reaction.CreatedAt
			found = true
		}
	}
	return newest, found
}

func (r *ReactionRepository) addToCounter(announcementID string, t models.ReactionType, userID string) {
	byType := r.counters[announcementID]
	if byType == nil {
		byType = make(map[models.ReactionType]map[string]struct{})
		r.counters[announcementID] = byType
	}
	set := byType[t]
	if set == nil {
		set = make(map[string]struct{})
		byType[t] = set
	}
	set[userID] = struct{}{}
}

func (r *ReactionRepository) removeFromCounter(announcementID string, t models.ReactionType, userID string) {
	delete(r.counters[announcementID][t], userID)
}
