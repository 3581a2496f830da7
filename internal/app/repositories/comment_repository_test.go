package repositories

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
)

func newComment(id, announcementID, author string, at time.Time) *models.Comment {
	return &models.Comment{
		ID:             id,
		AnnouncementID: announcementID,
		AuthorName:     author,
		Text:           "text",
		CreatedAt:      at,
	}
}

func TestCommentQuota(t *testing.T) {
	repo := NewCommentRepository()
	base := time.Now()

	for i := 0; i < 4; i++ {
		c := newComment(fmt.Sprintf("c%d", i), "a1", "Alice", base.Add(time.Duration(i)*time.Second))
		if err := repo.InsertWithQuota(c, 4); err != nil {
			t.Fatalf("comment %d should be within quota: %v", i+1, err)
		}
	}

	fifth := newComment("c5", "a1", "Alice", base.Add(5*time.Second))
	if err := repo.InsertWithQuota(fifth, 4); !errors.Is(err, apperrors.ErrCommentQuotaExceeded) {
		t.Errorf("5th comment by the same author should hit the quota, got %v", err)
	}

	// A different author name on the same announcement is unaffected.
	bob := newComment("c6", "a1", "Bob", base.Add(6*time.Second))
	if err := repo.InsertWithQuota(bob, 4); err != nil {
		t.Errorf("different author should not share the quota: %v", err)
	}

	// Same author on a different announcement starts fresh.
	other := newComment("c7", "a2", "Alice", base.Add(7*time.Second))
	if err := repo.InsertWithQuota(other, 4); err != nil {
		t.Errorf("quota is per announcement: %v", err)
	}
}

func TestCommentDelete(t *testing.T) {
	repo := NewCommentRepository()

	if err := repo.Delete("a1", "missing"); !errors.Is(err, apperrors.ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}

	c := newComment("c1", "a1", "Alice", time.Now())
	if err := repo.InsertWithQuota(c, 4); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	// Both IDs must match.
	if err := repo.Delete("a2", "c1"); !errors.Is(err, apperrors.ErrCommentNotFound) {
		t.Errorf("delete with wrong announcement should fail, got %v", err)
	}

	if err := repo.Delete("a1", "c1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := repo.Count("a1"); got != 0 {
		t.Errorf("expected 0 comments after delete, got %d", got)
	}

	// Deleting frees quota for the author.
	again := newComment("c2", "a1", "Alice", time.Now())
	if err := repo.InsertWithQuota(again, 1); err != nil {
		t.Errorf("quota should be recounted after delete: %v", err)
	}
}

func TestCommentListNewestFirst(t *testing.T) {
	repo := NewCommentRepository()
	base := time.Now()

	for i := 0; i < 5; i++ {
		c := newComment(fmt.Sprintf("c%d", i), "a1", fmt.Sprintf("author-%d", i), base.Add(time.Duration(i)*time.Second))
		if err := repo.InsertWithQuota(c, 4); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	list := repo.ListByAnnouncement("a1")
	if len(list) != 5 {
		t.Fatalf("expected 5 comments, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Errorf("comments out of order at index %d", i)
		}
	}
	if list[0].ID != "c4" {
		t.Errorf("expected newest comment first, got %s", list[0].ID)
	}
}

func TestCommentNewestCreatedAt(t *testing.T) {
	repo := NewCommentRepository()

	if _, ok := repo.NewestCreatedAt("a1"); ok {
		t.Error("empty store should report no newest comment")
	}

	base := time.Now()
	repo.InsertWithQuota(newComment("c1", "a1", "Alice", base), 4)
	repo.InsertWithQuota(newComment("c2", "a1", "Bob", base.Add(time.Hour)), 4)

	newest, ok := repo.NewestCreatedAt("a1")
	if !ok || !newest.Equal(base.Add(time.Hour)) {
		t.Errorf("expected newest %v, got %v (ok=%v)", base.Add(time.Hour), newest, ok)
	}
}
