package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/repositories"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/services"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
)

func setupCommentService() (*repositories.Repositories, services.CommentService) {
	repos := repositories.NewRepositories()
	svc := services.NewCommentService(repos.Announcements, repos.Comments, 4, zerolog.Nop())
	return repos, svc
}

func seedAnnouncement(repos *repositories.Repositories, id string) {
	now := time.Now()
	repos.Announcements.Insert(&models.Announcement{
		ID:        id,
		Title:     "Title",
		Status:    models.AnnouncementStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// seedComments inserts n comments with distinct ascending timestamps and
// distinct author names, so ordering is deterministic and the quota never
// interferes.
func seedComments(repos *repositories.Repositories, announcementID string, n int) {
	base := time.Now()
	for i := 0; i < n; i++ {
		repos.Comments.InsertWithQuota(&models.Comment{
			ID:             fmt.Sprintf("c%02d", i),
			AnnouncementID: announcementID,
			AuthorName:     fmt.Sprintf("author-%d", i),
			Text:           "text",
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}, 100)
	}
}

func TestListPagePagination(t *testing.T) {
	repos, svc := setupCommentService()
	seedAnnouncement(repos, "a1")
	seedComments(repos, "a1", 15)

	ctx := context.Background()

	first, err := svc.ListPage(ctx, "a1", "", 10)
	if err != nil {
		t.Fatalf("ListPage failed: %v", err)
	}
	if len(first.Comments) != 10 {
		t.Fatalf("expected 10 comments on the first page, got %d", len(first.Comments))
	}
	if first.NextCursor == nil {
		t.Fatal("full page should carry a nextCursor")
	}
	if first.Comments[0].ID != "c14" {
		t.Errorf("expected newest comment first, got %s", first.Comments[0].ID)
	}
	if *first.NextCursor != first.Comments[9].ID {
		t.Errorf("nextCursor should be the last returned ID, got %s", *first.NextCursor)
	}

	second, err := svc.ListPage(ctx, "a1", *first.NextCursor, 10)
	if err != nil {
		t.Fatalf("ListPage with cursor failed: %v", err)
	}
	if len(second.Comments) != 5 {
		t.Fatalf("expected the remaining 5 comments, got %d", len(second.Comments))
	}
	if second.NextCursor != nil {
		t.Error("short page must not carry a nextCursor")
	}

	// No overlap between pages.
	seen := map[string]bool{}
	for _, c := range first.Comments {
		seen[c.ID] = true
	}
	for _, c := range second.Comments {
		if seen[c.ID] {
			t.Errorf("comment %s returned twice", c.ID)
		}
	}
}

func TestListPageCursorMissRestarts(t *testing.T) {
	repos, svc := setupCommentService()
	seedAnnouncement(repos, "a1")
	seedComments(repos, "a1", 5)

	page, err := svc.ListPage(context.Background(), "a1", "no-such-comment", 10)
	if err != nil {
		t.Fatalf("ListPage failed: %v", err)
	}
	// An unknown cursor falls back to page one rather than erroring.
	if len(page.Comments) != 5 {
		t.Fatalf("expected restart from the full list, got %d comments", len(page.Comments))
	}
	if page.Comments[0].ID != "c04" {
		t.Errorf("expected newest comment first after restart, got %s", page.Comments[0].ID)
	}
}

func TestListPageUnknownAnnouncement(t *testing.T) {
	_, svc := setupCommentService()

	_, err := svc.ListPage(context.Background(), "missing", "", 10)
	if !errors.Is(err, apperrors.ErrAnnouncementNotFound) {
		t.Errorf("expected ErrAnnouncementNotFound, got %v", err)
	}
}

func TestAddCommentQuota(t *testing.T) {
	repos, svc := setupCommentService()
	seedAnnouncement(repos, "a1")
	ctx := context.Background()

	req := &dto.CreateCommentRequest{AuthorName: "Alice", Text: "hello"}
	for i := 0; i < 4; i++ {
		if _, err := svc.Add(ctx, "a1", req); err != nil {
			t.Fatalf("comment %d should succeed: %v", i+1, err)
		}
	}

	_, err := svc.Add(ctx, "a1", req)
	if !errors.Is(err, apperrors.ErrCommentQuotaExceeded) {
		t.Errorf("5th comment should exceed the quota, got %v", err)
	}
}

func TestAddCommentUnknownAnnouncement(t *testing.T) {
	_, svc := setupCommentService()

	_, err := svc.Add(context.Background(), "missing", &dto.CreateCommentRequest{AuthorName: "Alice", Text: "hi"})
	if !errors.Is(err, apperrors.ErrAnnouncementNotFound) {
		t.Errorf("expected ErrAnnouncementNotFound, got %v", err)
	}
}

func TestDeleteCommentIgnoresOwnership(t *testing.T) {
	repos, svc := setupCommentService()
	seedAnnouncement(repos, "a1")
	ctx := context.Background()

	comment, err := svc.Add(ctx, "a1", &dto.CreateCommentRequest{AuthorName: "Alice", Text: "hi"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Any identity may delete any comment.
	if err := svc.Delete(ctx, "a1", comment.ID, "someone-else"); err != nil {
		t.Errorf("delete by a different user should succeed: %v", err)
	}

	if err := svc.Delete(ctx, "a1", comment.ID, "someone-else"); !errors.Is(err, apperrors.ErrCommentNotFound) {
		t.Errorf("second delete should be NotFound, got %v", err)
	}
}
