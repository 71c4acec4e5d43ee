package habits

import (
	"math"
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/dates"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// Derived statistics over a habit collection snapshot. All functions
// are pure; "today" is whatever calendar day the given reference time
// falls on.

// CompletedToday counts habits whose completion flag is set.
func CompletedToday(habits []models.Habit) int {
	count := 0
	for _, h := range habits {
		if h.Completed {
			count++
		}
	}
	return count
}

// TotalStreak sums the streak counts of all habits.
func TotalStreak(habits []models.Habit) int {
	sum := 0
	for _, h := range habits {
		sum += h.Streak
	}
	return sum
}

// SuccessRate is the rounded percentage of habits completed today,
// defined as 0 for an empty collection.
func SuccessRate(habits []models.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	return int(math.Round(float64(CompletedToday(habits)) / float64(len(habits)) * 100))
}

// TodaysHabits is the dashboard projection: it hides only habits
// completed specifically today, keeping everything else visible.
func TodaysHabits(habits []models.Habit, now time.Time) []models.Habit {
	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if !h.Completed || h.LastCompleted == nil || !dates.SameDay(*h.LastCompleted, now) {
			out = append(out, h)
		}
	}
	return out
}

// CompletedOn returns the habits whose history records a completion on
// the given calendar day, for the calendar view.
func CompletedOn(habits []models.Habit, day time.Time) []models.Habit {
	out := make([]models.Habit, 0)
	for _, h := range habits {
		for _, e := range h.History {
			if e.Completed && dates.SameDay(e.Date, day) {
				out = append(out, h)
				break
			}
		}
	}
	return out
}

// DayCount is one bar of the weekly stats chart.
type DayCount struct {
	Day       string
	Completed int
}

// WeeklyCompletions buckets last-completed dates over the trailing
// seven days, oldest day first.
func WeeklyCompletions(habits []models.Habit, now time.Time) []DayCount {
	out := make([]DayCount, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		count := 0
		for _, h := range habits {
			if h.LastCompleted != nil && dates.SameDay(*h.LastCompleted, day) {
				count++
			}
		}
		out[i] = DayCount{Day: day.Format("Mon"), Completed: count}
	}
	return out
}

// CategoryCount groups the collection by category for the stats view.
type CategoryCount struct {
	Name      string
	Total     int
	Completed int
}

// ByCategory tallies habits per category, in first-seen order.
func ByCategory(habits []models.Habit) []CategoryCount {
	index := make(map[string]int)
	out := make([]CategoryCount, 0)
	for _, h := range habits {
		i, ok := index[h.Category]
		if !ok {
			i = len(out)
			index[h.Category] = i
			out = append(out, CategoryCount{Name: h.Category})
		}
		out[i].Total++
		if h.Completed {
			out[i].Completed++
		}
	}
	return out
}
