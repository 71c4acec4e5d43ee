package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/arun-chaudhary3116/HabitMate/internal/chat"
	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	"github.com/arun-chaudhary3116/HabitMate/internal/habits"
	"github.com/arun-chaudhary3116/HabitMate/internal/journal"
	"github.com/arun-chaudhary3116/HabitMate/internal/session"
	"github.com/arun-chaudhary3116/HabitMate/internal/tui/components/chatview"
	"github.com/arun-chaudhary3116/HabitMate/internal/tui/components/habitlist"
)

type LoginFormModel struct {
	Email    string
	Password string
	Register bool
	Name     string
}

type HabitFormModel struct {
	Name     string
	Goal     string
	Category string
	Color    string
}

type EntryFormModel struct {
	Content string
	Mood    string
}

type Model struct {
	session *session.Store
	habits  *habits.Store
	journal *journal.Store
	chat    *chat.Session

	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	chatModel     chatview.Model
	form          *huh.Form
	loginForm     *LoginFormModel
	habitForm     *HabitFormModel
	entryForm     *EntryFormModel
	formError     string
	status        string
	calendarMonth time.Time
	journalCursor int

	habitToDeleteID string
	entryToDeleteID string

	quitting bool
	width    int
	height   int
}

func NewModel(sess *session.Store, habitStore *habits.Store, journalStore *journal.Store, chatSession *chat.Session) Model {
	return Model{
		session:       sess,
		habits:        habitStore,
		journal:       journalStore,
		chat:          chatSession,
		state:         constants.StateHabits,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		habitList:     habitlist.New(nil, 0, 0),
		chatModel:     chatview.New(0, 0),
		calendarMonth: time.Now(),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Check, m.keys.Delete)
	case constants.StateCalendar:
		keys = append(keys, m.keys.Left, m.keys.Right)
	case constants.StateJournal:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	keys = append(keys, m.keys.Refresh)
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Logout}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Check, m.keys.Delete, m.keys.Refresh}
	case constants.StateJournal:
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Refresh}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(resolveSessionCmd(m.session), m.chatModel.Init())
}
