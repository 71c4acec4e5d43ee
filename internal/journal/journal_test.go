package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

type fakeAPI struct {
	entries   []models.JournalEntry
	listErr   error
	created   *models.JournalEntry
	createErr error
	deleteErr error

	createdMood models.Mood
	createCalls int
}

func (f *fakeAPI) ListEntries(ctx context.Context) ([]models.JournalEntry, error) {
	return f.entries, f.listErr
}

func (f *fakeAPI) CreateEntry(ctx context.Context, content string, mood models.Mood) (*models.JournalEntry, error) {
	f.createCalls++
	f.createdMood = mood
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &models.JournalEntry{ID: "j-new", Date: time.Now(), Content: content, Mood: mood}, nil
}

func (f *fakeAPI) DeleteEntry(ctx context.Context, id string) error {
	return f.deleteErr
}

func TestLoad(t *testing.T) {
	api := &fakeAPI{entries: []models.JournalEntry{
		{ID: "j1", Content: "Slept well", Mood: models.MoodCalm},
	}}
	store := New(api)

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := store.Entries(); len(got) != 1 || got[0].ID != "j1" {
		t.Errorf("unexpected entries: %+v", got)
	}
}

func TestLoad_Failure(t *testing.T) {
	store := New(&fakeAPI{listErr: errors.New("boom")})
	if err := store.Load(context.Background()); err == nil {
		t.Error("expected load error")
	}
	if len(store.Entries()) != 0 {
		t.Error("collection should stay empty after a failed load")
	}
}

func TestAdd_PrependsNewestFirst(t *testing.T) {
	api := &fakeAPI{}
	store := New(api)
	store.entries = []models.JournalEntry{{ID: "j1"}}

	saved, err := store.Add(context.Background(), "Morning pages done", models.MoodMotivated)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if saved.ID != "j-new" {
		t.Errorf("unexpected saved entry: %+v", saved)
	}

	got := store.Entries()
	if len(got) != 2 || got[0].ID != "j-new" || got[1].ID != "j1" {
		t.Errorf("new entry should be first: %+v", got)
	}
}

func TestAdd_RejectsEmptyContentWithoutNetworkCall(t *testing.T) {
	api := &fakeAPI{}
	store := New(api)

	if _, err := store.Add(context.Background(), "   ", models.MoodHappy); err == nil {
		t.Error("expected validation error")
	}
	if api.createCalls != 0 {
		t.Errorf("validation failure must not hit the network, got %d calls", api.createCalls)
	}
}

func TestAdd_UnknownMoodFallsBackToNeutral(t *testing.T) {
	api := &fakeAPI{}
	store := New(api)

	if _, err := store.Add(context.Background(), "note", models.Mood("Ecstatic")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if api.createdMood != models.MoodNeutral {
		t.Errorf("unknown mood should fall back to Neutral, got %q", api.createdMood)
	}
}

func TestAdd_FailureLeavesCollectionUntouched(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("boom")}
	store := New(api)

	if _, err := store.Add(context.Background(), "note", models.MoodHappy); err == nil {
		t.Error("expected add error")
	}
	if len(store.Entries()) != 0 {
		t.Error("failed add must not mutate the collection")
	}
}

func TestDelete(t *testing.T) {
	store := New(&fakeAPI{})
	store.entries = []models.JournalEntry{{ID: "j1"}, {ID: "j2"}}

	if err := store.Delete(context.Background(), "j1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got := store.Entries()
	if len(got) != 1 || got[0].ID != "j2" {
		t.Errorf("unexpected entries after delete: %+v", got)
	}
}

func TestDelete_FailureKeepsEntry(t *testing.T) {
	store := New(&fakeAPI{deleteErr: errors.New("boom")})
	store.entries = []models.JournalEntry{{ID: "j1"}}

	if err := store.Delete(context.Background(), "j1"); err == nil {
		t.Error("expected delete error")
	}
	if len(store.Entries()) != 1 {
		t.Error("entry must survive a failed delete")
	}
}
