package models

import "time"

// Mood is the fixed set of mood tags a journal entry can carry.
type Mood string

const (
	MoodNeutral    Mood = "Neutral"
	MoodHappy      Mood = "Happy"
	MoodEnergetic  Mood = "Energetic"
	MoodCalm       Mood = "Calm"
	MoodDetermined Mood = "Determined"
	MoodStressed   Mood = "Stressed"
	MoodTired      Mood = "Tired"
	MoodMotivated  Mood = "Motivated"
)

// Moods lists every valid mood tag, selectable ones first.
var Moods = []Mood{
	MoodHappy,
	MoodEnergetic,
	MoodCalm,
	MoodDetermined,
	MoodStressed,
	MoodTired,
	MoodMotivated,
	MoodNeutral,
}

// ValidMood reports whether m is one of the fixed mood tags.
func ValidMood(m Mood) bool {
	for _, mood := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// JournalEntry is a free-text note tied to a date and a mood tag.
// There is no client-side derived state over journal entries.
type JournalEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
	Mood    Mood      `json:"mood"`
}
