package dates

import (
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
)

// SameDay reports whether a and b fall on the same local calendar day.
// All "did this happen today" decisions in the app go through this
// predicate so that a completion recorded at 23:59 still counts for
// that day regardless of the time-of-day component.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the current local calendar day.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// DayString formats t as YYYY-MM-DD in local time.
func DayString(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// Today returns the current local calendar day as YYYY-MM-DD.
func Today() string {
	return DayString(time.Now())
}

// ParseDay parses a YYYY-MM-DD string into a local midnight time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}
