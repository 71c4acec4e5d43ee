// Package habits owns the habit collection for the current user and
// the pure statistics derived from it.
package habits

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/api"
	"github.com/arun-chaudhary3116/HabitMate/internal/dates"
	"github.com/arun-chaudhary3116/HabitMate/internal/logger"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// ErrAlreadyCompleted rejects a second completion of the same habit on
// the same calendar day before any network call is made.
var ErrAlreadyCompleted = errors.New("habit already completed today")

// ErrNoSession is returned by Load when session resolution has not
// completed or no user is signed in.
var ErrNoSession = errors.New("no authenticated session")

// ErrNotFound is returned when a habit id is not in the collection.
var ErrNotFound = errors.New("habit not found")

// API is the slice of the backend client the habit store needs.
type API interface {
	ListHabits(ctx context.Context) ([]models.Habit, error)
	CreateHabit(ctx context.Context, h api.NewHabit) (*models.Habit, error)
	CheckHabit(ctx context.Context, id string) (*api.CheckResult, error)
	DeleteHabit(ctx context.Context, id string) error
}

// SessionGate guards loading on a resolved session with a present
// user. Satisfied by *session.Store.
type SessionGate interface {
	Loading() bool
	User() *models.User
}

// Snapshots caches the last-known habit list for display continuity.
type Snapshots interface {
	SaveHabits([]models.Habit) error
	LoadHabits() ([]models.Habit, error)
}

// Fields carries the user-entered values for a new habit.
type Fields struct {
	Name     string
	Goal     string
	Category string
	Color    string
}

// Store holds the habit collection. It is mutated only by its own
// operations; the UI never issues a second mutating call before the
// prior one settles.
type Store struct {
	mu        sync.Mutex
	api       API
	gate      SessionGate
	snapshots Snapshots

	habits []models.Habit
	errMsg string
}

// Option configures a Store.
type Option func(*Store)

// WithSnapshots enables habit list caching.
func WithSnapshots(s Snapshots) Option {
	return func(st *Store) { st.snapshots = s }
}

// New creates an empty habit store.
func New(apiClient API, gate SessionGate, opts ...Option) *Store {
	s := &Store{api: apiClient, gate: gate}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Habits returns a copy of the current collection.
func (s *Store) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// Err returns the user-visible error from the last failed load, if any.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Load fetches the habit collection. It runs only once session
// resolution has completed with a user present. A fetch failure sets a
// user-visible error message and leaves the collection empty.
func (s *Store) Load(ctx context.Context) error {
	if s.gate != nil && (s.gate.Loading() || s.gate.User() == nil) {
		return ErrNoSession
	}

	habits, err := s.api.ListHabits(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = "Failed to fetch habits"
		s.habits = nil
		logger.Error("Failed to load habits", "error", err)
		return fmt.Errorf("failed to fetch habits: %w", err)
	}
	s.errMsg = ""
	s.habits = habits
	s.saveSnapshot()
	return nil
}

// Toggle marks the habit completed for today. A habit already
// completed on the current calendar day is rejected locally with
// ErrAlreadyCompleted and no network call. Otherwise the server's
// streak and last-completed timestamp are merged into the local record
// and a history entry for now is appended; the server is the source of
// truth for streak arithmetic.
func (s *Store) Toggle(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	h := s.habits[idx]
	if h.Completed && h.LastCompleted != nil && dates.SameDay(*h.LastCompleted, time.Now()) {
		s.mu.Unlock()
		return ErrAlreadyCompleted
	}
	s.mu.Unlock()

	result, err := s.api.CheckHabit(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	now := time.Now()
	last := result.LastCompleted
	if last == nil {
		last = &now
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-find: the collection may have shifted while the call settled.
	idx = s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.habits[idx].Completed = true
	s.habits[idx].Streak = result.Streak
	s.habits[idx].LastCompleted = last
	s.habits[idx].History = append(s.habits[idx].History, models.HistoryEntry{
		Date:      now,
		Completed: true,
	})
	s.saveSnapshot()
	return nil
}

// Add posts a new habit and, on success, appends the server-assigned
// record to the collection. On failure nothing is mutated and the
// error propagates so the form can redisplay the attempted values.
func (s *Store) Add(ctx context.Context, f Fields) (*models.Habit, error) {
	created, err := s.api.CreateHabit(ctx, api.NewHabit{
		Name:     f.Name,
		Goal:     f.Goal,
		Category: f.Category,
		Color:    f.Color,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add habit: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = append(s.habits, *created)
	s.saveSnapshot()
	return created, nil
}

// Delete removes the habit on the server and drops the local record
// only after confirmation.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteHabit(ctx, id); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx >= 0 {
		s.habits = append(s.habits[:idx], s.habits[idx+1:]...)
	}
	s.saveSnapshot()
	return nil
}

// Find locates a habit by id or, failing that, by exact name.
func (s *Store) Find(key string) (*models.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(key); idx >= 0 {
		h := s.habits[idx]
		return &h, true
	}
	for _, h := range s.habits {
		if h.Name == key {
			found := h
			return &found, true
		}
	}
	return nil, false
}

// CachedHabits returns the last-known habit list snapshot.
func (s *Store) CachedHabits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshots == nil {
		return nil
	}
	habits, err := s.snapshots.LoadHabits()
	if err != nil {
		return nil
	}
	return habits
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// saveSnapshot must be called with the lock held.
func (s *Store) saveSnapshot() {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveHabits(s.habits); err != nil {
		logger.Warn("Failed to cache habit snapshot", "error", err)
	}
}
