package models

import "time"

// HistoryEntry is a single day's completion record for a habit, used by
// the calendar and stats projections.
type HistoryEntry struct {
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// Habit is the local shape of a tracked habit. Completion-related
// fields are merged in from server responses; the backend owns streak
// arithmetic.
type Habit struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Goal          string         `json:"goal"`
	Category      string         `json:"category"`
	Color         string         `json:"color"`
	Completed     bool           `json:"completed"`
	Streak        int            `json:"streak"`
	LastCompleted *time.Time     `json:"last_completed,omitempty"`
	History       []HistoryEntry `json:"history,omitempty"`
}
