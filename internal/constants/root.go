package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "habitmate"
	DefaultKeyringUser = "session-cookie"
	DefaultConfigPath  = "~/.config/habitmate/habitmate.db"
	DefaultServerURL   = "http://localhost:8000"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// API route prefix on the HabitMate backend
	APIPrefix = "/api/v2"

	// Defaults applied when the backend omits optional habit fields
	DefaultHabitName = "Untitled Habit"
	DefaultHabitGoal = "Daily goal"
	DefaultCategory  = "General"
	DefaultColor     = "bg-primary"
)

// Session states. The first five are the dashboard tabs and must stay
// zero-based and contiguous; tab cycling and rendering index on them.
const (
	StateHabits SessionState = iota
	StateCalendar
	StateStats
	StateJournal
	StateChat
	StateLogin
	StateAddHabit
	StateAddEntry
	StateConfirmDelete
	StateConfirmEntryDelete
)

// Categories a habit can be filed under, as offered by the add-habit form.
var Categories = []string{
	"Fitness",
	"Health",
	"Learning",
	"Productivity",
	"Mindfulness",
	"Social",
	"Creative",
}

// Colors maps display names to the backend's color tokens.
var Colors = []struct {
	Name  string
	Value string
}{
	{"Primary", "bg-primary"},
	{"Secondary", "bg-secondary"},
	{"Accent", "bg-accent"},
	{"Muted", "bg-muted"},
}
