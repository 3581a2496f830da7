package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
)

// CommentRepository stores comments grouped by announcement ID.
type CommentRepository struct {
	mu             sync.Mutex
	byAnnouncement map[string][]*models.Comment
}

// NewCommentRepository creates an empty comment store.
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		byAnnouncement: make(map[string][]*models.Comment),
	}
}

// InsertWithQuota adds a comment unless the author already holds
// maxPerAuthor comments on the same announcement. The quota check and the
// insert run under one lock acquisition, so two racing requests cannot
// sneak past the cap. The quota is keyed on the free-text author name.
func (r *CommentRepository) InsertWithQuota(c *models.Comment, maxPerAuthor int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := 0
	for _, stored := range r.byAnnouncement[c.AnnouncementID] {
		if stored.AuthorName == c.AuthorName {
			existing++
		}
	}
	if existing >= maxPerAuthor {
		return apperrors.ErrCommentQuotaExceeded
	}

	stored := *c
	r.byAnnouncement[c.AnnouncementID] = append(r.byAnnouncement[c.AnnouncementID], &stored)
	return nil
}

// Delete removes the comment matching both IDs, or returns
// ErrCommentNotFound.
func (r *CommentRepository) Delete(announcementID, commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byAnnouncement[announcementID]
	for i, c := range list {
		if c.ID == commentID {
			r.byAnnouncement[announcementID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCommentNotFound
}

// ListByAnnouncement returns copies of all comments on the announcement,
// newest first.
func (r *CommentRepository) ListByAnnouncement(announcementID string) []*models.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byAnnouncement[announcementID]
	out := make([]*models.Comment, 0, len(list))
	for _, c := range list {
		copied := *c
		out = append(out, &copied)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Count returns the number of comments on the announcement.
func (r *CommentRepository) Count(announcementID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byAnnouncement[announcementID])
}

// NewestCreatedAt returns the timestamp of the most recent comment on the
// announcement, if any.
func (r *CommentRepository) NewestCreatedAt(announcementID string) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var newest time.Time
	found := false
	for _, c := range r.byAnnouncement[announcementID] {
		if c.CreatedAt.After(newest) {
			newest = c.CreatedAt
			found = true
		}
	}
	return newest, found
}
