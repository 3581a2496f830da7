package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
)

func newReaction(id, announcementID, userID string, t models.ReactionType, at time.Time) *models.Reaction {
	return &models.Reaction{
		ID:             id,
		AnnouncementID: announcementID,
		UserID:         userID,
		Type:           t,
		CreatedAt:      at,
	}
}

func TestReactionSetThenSwitch(t *testing.T) {
	repo := NewReactionRepository()
	now := time.Now()

	repo.Set(newReaction("r1", "a1", "u1", models.ReactionUp, now))
	repo.Set(newReaction("r2", "a1", "u1", models.ReactionHeart, now.Add(time.Second)))

	got, ok := repo.Get("a1", "u1")
	if !ok {
		t.Fatal("expected a reaction for u1")
	}
	if got.Type != models.ReactionHeart {
		t.Errorf("expected heart after switch, got %s", got.Type)
	}
	if got.ID != "r2" {
		t.Errorf("expected the replacing row r2, got %s", got.ID)
	}

	counts := repo.Counts("a1")
	if counts.Up != 0 || counts.Down != 0 || counts.Heart != 1 {
		t.Errorf("expected counts {0 0 1}, got %+v", counts)
	}
}

func TestReactionSetSameTypeReplacesRow(t *testing.T) {
	repo := NewReactionRepository()
	now := time.Now()

	repo.Set(newReaction("r1", "a1", "u1", models.ReactionUp, now))
	repo.Set(newReaction("r2", "a1", "u1", models.ReactionUp, now.Add(time.Second)))

	got, _ := repo.Get("a1", "u1")
	if got.ID != "r2" {
		t.Errorf("setting the same type should still replace the row, got %s", got.ID)
	}

	counts := repo.Counts("a1")
	if counts.Up != 1 {
		t.Errorf("expected exactly one up reaction, got %d", counts.Up)
	}
}

func TestReactionRemove(t *testing.T) {
	repo := NewReactionRepository()

	if err := repo.Remove("a1", "u1"); !errors.Is(err, apperrors.ErrReactionNotFound) {
		t.Errorf("expected ErrReactionNotFound, got %v", err)
	}

	repo.Set(newReaction("r1", "a1", "u1", models.ReactionDown, time.Now()))
	if err := repo.Remove("a1", "u1"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, ok := repo.Get("a1", "u1"); ok {
		t.Error("reaction should be gone after remove")
	}
	if counts := repo.Counts("a1"); counts.Down != 0 {
		t.Errorf("counter should be empty after remove, got %d", counts.Down)
	}

	if err := repo.Remove("a1", "u1"); !errors.Is(err, apperrors.ErrReactionNotFound) {
		t.Errorf("second remove should fail, got %v", err)
	}
}

func TestReactionCountsPerUser(t *testing.T) {
	repo := NewReactionRepository()
	now := time.Now()

	repo.Set(newReaction("r1", "a1", "u1", models.ReactionUp, now))
	repo.Set(newReaction("r2", "a1", "u2", models.ReactionUp, now))
	repo.Set(newReaction("r3", "a1", "u3", models.ReactionHeart, now))
	repo.Set(newReaction("r4", "a2", "u1", models.ReactionDown, now))

	counts := repo.Counts("a1")
	if counts.Up != 2 || counts.Down != 0 || counts.Heart != 1 {
		t.Errorf("expected counts {2 0 1}, got %+v", counts)
	}

	other := repo.Counts("a2")
	if other.Down != 1 {
		t.Errorf("expected one down on a2, got %+v", other)
	}
}

func TestReactionNewestCreatedAt(t *testing.T) {
	repo := NewReactionRepository()

	if _, ok := repo.NewestCreatedAt("a1"); ok {
		t.Error("empty store should report no newest reaction")
	}

	base := time.Now()
	repo.Set(newReaction("r1", "a1", "u1", models.ReactionUp, base))
	repo.Set(newReaction("r2", "a1", "u2", models.ReactionUp, base.Add(time.Minute)))

	newest, ok := repo.NewestCreatedAt("a1")
	if !ok || !newest.Equal(base.Add(time.Minute)) {
		t.Errorf("expected newest %v, got %v (ok=%v)", base.Add(time.Minute), newest, ok)
	}
}
