// Package journal owns the journal entry collection. There is no
// client-side derived state over entries.
package journal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/arun-chaudhary3116/HabitMate/internal/logger"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// API is the slice of the backend client the journal store needs.
type API interface {
	ListEntries(ctx context.Context) ([]models.JournalEntry, error)
	CreateEntry(ctx context.Context, content string, mood models.Mood) (*models.JournalEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// Store holds the journal entries, newest first.
type Store struct {
	mu      sync.Mutex
	api     API
	entries []models.JournalEntry
}

// New creates an empty journal store.
func New(api API) *Store {
	return &Store{api: api}
}

// Entries returns a copy of the current entries.
func (s *Store) Entries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Load fetches all entries.
func (s *Store) Load(ctx context.Context) error {
	entries, err := s.api.ListEntries(ctx)
	if err != nil {
		logger.Error("Failed to load journal entries", "error", err)
		return fmt.Errorf("failed to fetch journal entries: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	return nil
}

// Add validates and posts a new entry, prepending the saved record so
// the newest entry renders first. Empty content is rejected before any
// call is issued; an unknown mood falls back to Neutral.
func (s *Store) Add(ctx context.Context, content string, mood models.Mood) (*models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("entry content cannot be empty")
	}
	if !models.ValidMood(mood) {
		mood = models.MoodNeutral
	}

	saved, err := s.api.CreateEntry(ctx, content, mood)
	if err != nil {
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.JournalEntry{*saved}, s.entries...)
	return saved, nil
}

// Delete removes the entry on the server, then locally.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	return nil
}
