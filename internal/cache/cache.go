// Package cache persists the last-known user and habit snapshots in a
// local sqlite file so the CLI can show something meaningful while the
// backend is unreachable. It is display continuity only, never a
// source of truth: the backend owns all state.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// ErrNoSnapshot is returned when nothing has been cached yet.
var ErrNoSnapshot = errors.New("no snapshot cached")

const schema = `
CREATE TABLE IF NOT EXISTS user_snapshot (
	row_id         INTEGER PRIMARY KEY CHECK (row_id = 1),
	id             TEXT NOT NULL,
	name           TEXT NOT NULL,
	email          TEXT NOT NULL,
	avatar         TEXT NOT NULL DEFAULT '',
	bio            TEXT NOT NULL DEFAULT '',
	verified       INTEGER NOT NULL DEFAULT 0,
	cached_at      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habit_snapshot (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	goal           TEXT NOT NULL DEFAULT '',
	category       TEXT NOT NULL DEFAULT '',
	color          TEXT NOT NULL DEFAULT '',
	completed      INTEGER NOT NULL DEFAULT 0,
	streak         INTEGER NOT NULL DEFAULT 0,
	last_completed TEXT,
	history        TEXT NOT NULL DEFAULT '[]',
	position       INTEGER NOT NULL
);
`

// Store is the sqlite-backed snapshot cache.
type Store struct {
	path string
	db   *sql.DB
}

// New creates a cache handle; Open must be called before use.
func New(path string) *Store {
	return &Store{path: path}
}

// Open creates the cache directory and schema if needed and opens the
// database. It is idempotent.
func (s *Store) Open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create cache schema: %w", err)
	}
	s.db = db
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// SaveUser replaces the cached user snapshot.
func (s *Store) SaveUser(u models.User) error {
	if s.db == nil {
		return errors.New("cache not open")
	}
	_, err := s.db.Exec(`
		INSERT INTO user_snapshot (row_id, id, name, email, avatar, bio, verified, cached_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (row_id) DO UPDATE SET
			id = excluded.id, name = excluded.name, email = excluded.email,
			avatar = excluded.avatar, bio = excluded.bio,
			verified = excluded.verified, cached_at = excluded.cached_at`,
		u.ID, u.Name, u.Email, u.Avatar, u.Bio, boolToInt(u.Verified),
		time.Now().Format(time.RFC3339))
	return err
}

// LoadUser returns the cached user snapshot, or ErrNoSnapshot.
func (s *Store) LoadUser() (*models.User, error) {
	if s.db == nil {
		return nil, errors.New("cache not open")
	}
	var u models.User
	var verified int
	err := s.db.QueryRow(`
		SELECT id, name, email, avatar, bio, verified
		FROM user_snapshot WHERE row_id = 1`).
		Scan(&u.ID, &u.Name, &u.Email, &u.Avatar, &u.Bio, &verified)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	u.Verified = verified != 0
	return &u, nil
}

// ClearUser removes the cached user snapshot.
func (s *Store) ClearUser() error {
	if s.db == nil {
		return errors.New("cache not open")
	}
	_, err := s.db.Exec(`DELETE FROM user_snapshot`)
	return err
}

// SaveHabits replaces the cached habit list.
func (s *Store) SaveHabits(habits []models.Habit) error {
	if s.db == nil {
		return errors.New("cache not open")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habit_snapshot`); err != nil {
		return err
	}
	for i, h := range habits {
		history, err := json.Marshal(h.History)
		if err != nil {
			return err
		}
		var lastCompleted interface{}
		if h.LastCompleted != nil {
			lastCompleted = h.LastCompleted.Format(time.RFC3339)
		}
		if _, err := tx.Exec(`
			INSERT INTO habit_snapshot
				(id, name, goal, category, color, completed, streak, last_completed, history, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Goal, h.Category, h.Color,
			boolToInt(h.Completed), h.Streak, lastCompleted, string(history), i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadHabits returns the cached habit list in its saved order, or
// ErrNoSnapshot when nothing has been cached.
func (s *Store) LoadHabits() ([]models.Habit, error) {
	if s.db == nil {
		return nil, errors.New("cache not open")
	}
	rows, err := s.db.Query(`
		SELECT id, name, goal, category, color, completed, streak, last_completed, history
		FROM habit_snapshot ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var completed int
		var lastCompleted sql.NullString
		var history string
		if err := rows.Scan(&h.ID, &h.Name, &h.Goal, &h.Category, &h.Color,
			&completed, &h.Streak, &lastCompleted, &history); err != nil {
			return nil, err
		}
		h.Completed = completed != 0
		if lastCompleted.Valid {
			if t, err := time.Parse(time.RFC3339, lastCompleted.String); err == nil {
				h.LastCompleted = &t
			}
		}
		if err := json.Unmarshal([]byte(history), &h.History); err != nil {
			return nil, fmt.Errorf("corrupt history for habit %s: %w", h.ID, err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if habits == nil {
		return nil, ErrNoSnapshot
	}
	return habits, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
