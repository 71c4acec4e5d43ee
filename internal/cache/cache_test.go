package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

func setupTestCache(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "habitmate.db"))
	if err := store.Open(); err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUserSnapshotRoundTrip(t *testing.T) {
	store := setupTestCache(t)

	user := models.User{
		ID: "u1", Name: "ada", Email: "ada@example.com",
		Avatar: "http://img/x.png", Bio: "builder", Verified: true,
	}
	if err := store.SaveUser(user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	got, err := store.LoadUser()
	if err != nil {
		t.Fatalf("LoadUser failed: %v", err)
	}
	if *got != user {
		t.Errorf("loaded user = %+v, want %+v", got, user)
	}
}

func TestSaveUser_ReplacesSnapshot(t *testing.T) {
	store := setupTestCache(t)

	if err := store.SaveUser(models.User{ID: "u1", Name: "old", Email: "o@b.c"}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	if err := store.SaveUser(models.User{ID: "u2", Name: "new", Email: "n@b.c"}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	got, err := store.LoadUser()
	if err != nil {
		t.Fatalf("LoadUser failed: %v", err)
	}
	if got.ID != "u2" {
		t.Errorf("snapshot should hold only the latest user, got %+v", got)
	}
}

func TestLoadUser_NoSnapshot(t *testing.T) {
	store := setupTestCache(t)
	if _, err := store.LoadUser(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestClearUser(t *testing.T) {
	store := setupTestCache(t)

	if err := store.SaveUser(models.User{ID: "u1", Name: "ada", Email: "a@b.c"}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	if err := store.ClearUser(); err != nil {
		t.Fatalf("ClearUser failed: %v", err)
	}
	if _, err := store.LoadUser(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot after clear, got %v", err)
	}
}

func TestHabitSnapshotRoundTrip(t *testing.T) {
	store := setupTestCache(t)

	now := time.Now().Truncate(time.Second)
	habits := []models.Habit{
		{
			ID: "h1", Name: "Read", Goal: "20 pages", Category: "Learning",
			Color: "bg-primary", Completed: true, Streak: 4, LastCompleted: &now,
			History: []models.HistoryEntry{{Date: now, Completed: true}},
		},
		{ID: "h2", Name: "Run", Category: "Fitness"},
	}

	if err := store.SaveHabits(habits); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	got, err := store.LoadHabits()
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(got))
	}
	h1 := got[0]
	if h1.ID != "h1" || h1.Streak != 4 || !h1.Completed {
		t.Errorf("h1 round trip wrong: %+v", h1)
	}
	if h1.LastCompleted == nil || !h1.LastCompleted.Equal(now) {
		t.Errorf("lastCompleted round trip wrong: %v", h1.LastCompleted)
	}
	if len(h1.History) != 1 || !h1.History[0].Completed {
		t.Errorf("history round trip wrong: %+v", h1.History)
	}
	if got[1].ID != "h2" || got[1].LastCompleted != nil {
		t.Errorf("h2 round trip wrong: %+v", got[1])
	}
}

func TestSaveHabits_ReplacesList(t *testing.T) {
	store := setupTestCache(t)

	if err := store.SaveHabits([]models.Habit{{ID: "h1", Name: "Read"}}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}
	if err := store.SaveHabits([]models.Habit{{ID: "h2", Name: "Run"}}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	got, err := store.LoadHabits()
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "h2" {
		t.Errorf("snapshot should hold only the latest list, got %+v", got)
	}
}

func TestLoadHabits_NoSnapshot(t *testing.T) {
	store := setupTestCache(t)
	if _, err := store.LoadHabits(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	store := setupTestCache(t)
	if err := store.Open(); err != nil {
		t.Errorf("second Open should be a no-op, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitmate.db")

	store := New(path)
	if err := store.Open(); err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	if err := store.SaveUser(models.User{ID: "u1", Name: "ada", Email: "a@b.c"}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	store.Close()

	reopened := New(path)
	if err := reopened.Open(); err != nil {
		t.Fatalf("failed to reopen cache: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.LoadUser()
	if err != nil {
		t.Fatalf("LoadUser after reopen failed: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("snapshot should survive reopen, got %+v", got)
	}
}
