package api

import (
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	"github.com/arun-chaudhary3116/HabitMate/internal/dates"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// Wire shapes mirror the backend's JSON field names. Several records
// carry both Mongo-style (_id, title) and plain (id, name) field names
// depending on the endpoint, so mapping always tries both.

type wireUser struct {
	ID              string `json:"_id"`
	AltID           string `json:"id"`
	Username        string `json:"username"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfilePicture  string `json:"profilePicture"`
	Bio             string `json:"bio"`
	IsEmailVerified *bool  `json:"isEmailVerified"`
}

func (w wireUser) toUser() models.User {
	u := models.User{
		ID:     firstNonEmpty(w.ID, w.AltID),
		Name:   firstNonEmpty(w.Username, w.Name),
		Email:  w.Email,
		Avatar: w.ProfilePicture,
		Bio:    w.Bio,
	}
	if w.IsEmailVerified != nil {
		u.Verified = *w.IsEmailVerified
	}
	return u
}

type wireHistoryEntry struct {
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

type wireHabit struct {
	ID              string             `json:"_id"`
	AltID           string             `json:"id"`
	Title           string             `json:"title"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Goal            string             `json:"goal"`
	Category        string             `json:"category"`
	Color           string             `json:"color"`
	Streak          int                `json:"streak"`
	CompletedToday  bool               `json:"completedToday"`
	LastCheckedDate *time.Time         `json:"lastCheckedDate"`
	History         []wireHistoryEntry `json:"history"`
}

// toHabit maps a wire record to the local shape: optional fields get
// defaults, the history sequence is reconstructed by appending a
// synthesized entry for lastCheckedDate so "today" appears even when
// the server-provided history omits it, and the completion flag is
// derived by calendar-day comparison against now.
func (w wireHabit) toHabit(now time.Time) models.Habit {
	history := make([]models.HistoryEntry, 0, len(w.History)+1)
	for _, e := range w.History {
		history = append(history, models.HistoryEntry{Date: e.Date, Completed: e.Completed})
	}
	if w.LastCheckedDate != nil {
		history = append(history, models.HistoryEntry{Date: *w.LastCheckedDate, Completed: true})
	}

	completed := false
	if w.LastCheckedDate != nil && dates.SameDay(*w.LastCheckedDate, now) {
		completed = w.CompletedToday
	}

	return models.Habit{
		ID:            firstNonEmpty(w.ID, w.AltID),
		Name:          firstNonEmpty(w.Title, w.Name, constants.DefaultHabitName),
		Goal:          firstNonEmpty(w.Description, w.Goal, constants.DefaultHabitGoal),
		Category:      firstNonEmpty(w.Category, constants.DefaultCategory),
		Color:         firstNonEmpty(w.Color, constants.DefaultColor),
		Completed:     completed,
		Streak:        w.Streak,
		LastCompleted: w.LastCheckedDate,
		History:       history,
	}
}

type wireJournalEntry struct {
	ID      string `json:"id"`
	AltID   string `json:"_id"`
	Date    string `json:"date"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

func (w wireJournalEntry) toEntry() models.JournalEntry {
	return models.JournalEntry{
		ID:      firstNonEmpty(w.ID, w.AltID),
		Date:    parseWireDate(w.Date),
		Content: w.Content,
		Mood:    models.Mood(w.Mood),
	}
}

func parseWireDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := dates.ParseDay(s); err == nil {
		return t
	}
	return time.Time{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
