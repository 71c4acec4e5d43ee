// Package session holds the client's cached view of the currently
// authenticated user, backed by a server-side cookie the client never
// inspects directly.
package session

import (
	"context"
	"sync"

	"github.com/arun-chaudhary3116/HabitMate/internal/logger"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// API is the slice of the backend client the session store needs.
type API interface {
	Me(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, username string) error
	Logout(ctx context.Context) error
	PersistSession() error
	ClearSession() error
}

// Snapshots caches the last-known user record for display continuity
// when the backend is unreachable. Implemented by internal/cache.
type Snapshots interface {
	SaveUser(models.User) error
	LoadUser() (*models.User, error)
	ClearUser() error
}

// Store owns the session state: the current user (or none) and a
// loading flag that is set until the first resolution settles.
type Store struct {
	mu        sync.Mutex
	api       API
	snapshots Snapshots
	onLanding func()

	user    *models.User
	loading bool
}

// Option configures a Store.
type Option func(*Store)

// WithSnapshots enables user snapshot caching.
func WithSnapshots(s Snapshots) Option {
	return func(st *Store) { st.snapshots = s }
}

// WithLandingHook sets the navigation hook fired after logout,
// regardless of whether the server-side invalidation succeeded.
func WithLandingHook(fn func()) Option {
	return func(st *Store) { st.onLanding = fn }
}

// New creates a session store in the loading state.
func New(api API, opts ...Option) *Store {
	s := &Store{api: api, loading: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// User returns the current user, or nil when unauthenticated.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Loading reports whether the initial session resolution is still in
// flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Resolve queries the identity endpoint and installs the result. Any
// failure, network or non-2xx, leaves the user absent. The loading
// flag is always cleared so callers never block indefinitely.
func (s *Store) Resolve(ctx context.Context) error {
	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.user = nil
		logger.Debug("Session resolution failed", "error", err)
		return err
	}
	s.user = user
	s.saveSnapshot(*user)
	return nil
}

// Login authenticates and replaces the user record wholesale. The
// session cookie is persisted so later invocations stay signed in.
func (s *Store) Login(ctx context.Context, email, password string) error {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.api.PersistSession(); err != nil {
		logger.Warn("Failed to persist session cookie", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.user = user
	s.saveSnapshot(*user)
	return nil
}

// Register creates an account and signs in with the new credentials,
// matching the backend's signup flow.
func (s *Store) Register(ctx context.Context, email, password, username string) error {
	if err := s.api.Register(ctx, email, password, username); err != nil {
		return err
	}
	return s.Login(ctx, email, password)
}

// LoginWithOAuth installs a pre-parsed user record from an OAuth
// redirect. The payload arrived unauthenticated in a URL parameter, so
// it is display data only: it is never persisted as a credential, and
// only the server-set cookie authenticates subsequent calls.
func (s *Store) LoginWithOAuth(user models.User) {
	logger.Warn("Installing OAuth callback payload as display data", "user", user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.user = &user
	s.saveSnapshot(user)
}

// Logout best-effort invalidates the server session, then clears all
// local state and fires the landing hook regardless of the network
// outcome.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		logger.Warn("Server-side logout failed", "error", err)
	}
	if err := s.api.ClearSession(); err != nil {
		logger.Warn("Failed to clear stored session", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	if s.snapshots != nil {
		if err := s.snapshots.ClearUser(); err != nil {
			logger.Warn("Failed to clear cached user snapshot", "error", err)
		}
	}
	s.mu.Unlock()

	if s.onLanding != nil {
		s.onLanding()
	}
}

// CachedUser returns the last-known user snapshot, if any.
func (s *Store) CachedUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshots == nil {
		return nil
	}
	user, err := s.snapshots.LoadUser()
	if err != nil {
		return nil
	}
	return user
}

// saveSnapshot must be called with the lock held.
func (s *Store) saveSnapshot(user models.User) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveUser(user); err != nil {
		logger.Warn("Failed to cache user snapshot", "error", err)
	}
}
