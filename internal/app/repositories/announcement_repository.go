package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
)

// AnnouncementRepository stores announcements keyed by ID.
type AnnouncementRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Announcement
}

// NewAnnouncementRepository creates an empty announcement store.
func NewAnnouncementRepository() *AnnouncementRepository {
	return &AnnouncementRepository{
		byID: make(map[string]*models.Announcement),
	}
}

// Insert adds a new announcement.
func (r *AnnouncementRepository) Insert(a *models.Announcement) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *a
	r.byID[a.ID] = &stored
}

// GetByID returns a copy of the announcement or ErrAnnouncementNotFound.
func (r *AnnouncementRepository) GetByID(id string) (models.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return models.Announcement{}, apperrors.ErrAnnouncementNotFound
	}
	return *a, nil
}

// Exists reports whether an announcement with the given ID is stored.
func (r *AnnouncementRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok
}

// List returns copies of all announcements, newest first. Ordering is
// explicit rather than relying on map iteration order.
func (r *AnnouncementRepository) List() []models.Announcement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Announcement, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, *a)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// UpdateStatus mutates the status in place and returns the updated copy.
func (r *AnnouncementRepository) UpdateStatus(id string, status models.AnnouncementStatus) (models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return models.Announcement{}, apperrors.ErrAnnouncementNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return *a, nil
}
