package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/arun-chaudhary3116/HabitMate/internal/chat"
	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	"github.com/arun-chaudhary3116/HabitMate/internal/habits"
	"github.com/arun-chaudhary3116/HabitMate/internal/journal"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
	"github.com/arun-chaudhary3116/HabitMate/internal/session"
	"github.com/arun-chaudhary3116/HabitMate/internal/tui/components/chatview"
	"github.com/arun-chaudhary3116/HabitMate/internal/tui/components/habitlist"
)

const requestTimeout = 15 * time.Second

type sessionResolvedMsg struct{ user *models.User }

type authDoneMsg struct{ err error }

type habitsLoadedMsg struct{ err error }

type habitCheckedMsg struct{ err error }

type habitAddedMsg struct{ err error }

type habitDeletedMsg struct{ err error }

type journalLoadedMsg struct{ err error }

type entryAddedMsg struct{ err error }

type entryDeletedMsg struct{ err error }

type chatRepliedMsg struct{ err error }

type loggedOutMsg struct{}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func resolveSessionCmd(s *session.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		_ = s.Resolve(ctx)
		return sessionResolvedMsg{user: s.User()}
	}
}

func loginCmd(s *session.Store, fm LoginFormModel) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		var err error
		if fm.Register {
			err = s.Register(ctx, fm.Email, fm.Password, fm.Name)
		} else {
			err = s.Login(ctx, fm.Email, fm.Password)
		}
		return authDoneMsg{err: err}
	}
}

func logoutCmd(s *session.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		s.Logout(ctx)
		return loggedOutMsg{}
	}
}

func loadHabitsCmd(s *habits.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		return habitsLoadedMsg{err: s.Load(ctx)}
	}
}

func checkHabitCmd(s *habits.Store, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		return habitCheckedMsg{err: s.Toggle(ctx, id)}
	}
}

func addHabitCmd(s *habits.Store, f habits.Fields) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		_, err := s.Add(ctx, f)
		return habitAddedMsg{err: err}
	}
}

func deleteHabitCmd(s *habits.Store, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		return habitDeletedMsg{err: s.Delete(ctx, id)}
	}
}

func loadJournalCmd(s *journal.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		return journalLoadedMsg{err: s.Load(ctx)}
	}
}

func addEntryCmd(s *journal.Store, content string, mood models.Mood) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		_, err := s.Add(ctx, content, mood)
		return entryAddedMsg{err: err}
	}
}

func deleteEntryCmd(s *journal.Store, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		return entryDeletedMsg{err: s.Delete(ctx, id)}
	}
}

func sendChatCmd(c *chat.Session, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		return chatRepliedMsg{err: c.Send(ctx, text)}
	}
}

func (m *Model) enterLogin() {
	m.loginForm = &LoginFormModel{}
	m.form = newLoginForm(m.loginForm)
	m.state = constants.StateLogin
}

func (m *Model) openHabitForm() {
	m.habitForm = &HabitFormModel{
		Category: constants.Categories[0],
		Color:    constants.DefaultColor,
	}
	m.form = newHabitForm(m.habitForm)
	m.state = constants.StateAddHabit
}

func (m *Model) openEntryForm() {
	m.entryForm = &EntryFormModel{Mood: string(models.MoodNeutral)}
	m.form = newEntryForm(m.entryForm)
	m.state = constants.StateAddEntry
}

func (m *Model) refreshHabits() {
	m.habitList.SetHabits(m.habits.Habits())
	m.status = m.habits.Err()
}

func (m *Model) clampJournalCursor() {
	if n := len(m.journal.Entries()); m.journalCursor >= n && n > 0 {
		m.journalCursor = n - 1
	} else if n == 0 {
		m.journalCursor = 0
	}
}

func (m *Model) nextTab() {
	m.state = (m.state + 1) % 5
}

func (m *Model) prevTab() {
	m.state = (m.state + 4) % 5
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Form states own the input loop until the form settles.
	switch m.state {
	case constants.StateLogin:
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		if m.form.State == huh.StateCompleted {
			return m, loginCmd(m.session, *m.loginForm)
		}
		if m.form.State == huh.StateAborted {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tea.Batch(cmds...)

	case constants.StateAddHabit:
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			return m, addHabitCmd(m.habits, habits.Fields{
				Name:     m.habitForm.Name,
				Goal:     m.habitForm.Goal,
				Category: m.habitForm.Category,
				Color:    m.habitForm.Color,
			})
		case huh.StateAborted:
			m.state = constants.StateHabits
		}
		return m, tea.Batch(cmds...)

	case constants.StateAddEntry:
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateJournal
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			return m, addEntryCmd(m.journal, m.entryForm.Content, models.Mood(m.entryForm.Mood))
		case huh.StateAborted:
			m.state = constants.StateJournal
		}
		return m, tea.Batch(cmds...)

	case constants.StateConfirmDelete:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				id := m.habitToDeleteID
				m.habitToDeleteID = ""
				m.state = constants.StateHabits
				return m, deleteHabitCmd(m.habits, id)
			case "n", "N", "esc":
				m.habitToDeleteID = ""
				m.state = constants.StateHabits
			}
		}
		return m, nil

	case constants.StateConfirmEntryDelete:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				id := m.entryToDeleteID
				m.entryToDeleteID = ""
				m.state = constants.StateJournal
				return m, deleteEntryCmd(m.journal, id)
			case "n", "N", "esc":
				m.entryToDeleteID = ""
				m.state = constants.StateJournal
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		m.chatModel.SetSize(msg.Width-4, msg.Height-9)
		return m, nil

	case sessionResolvedMsg:
		if msg.user == nil {
			m.enterLogin()
			return m, nil
		}
		return m, tea.Batch(loadHabitsCmd(m.habits), loadJournalCmd(m.journal))

	case authDoneMsg:
		if msg.err != nil {
			m.enterLogin()
			m.formError = msg.err.Error()
			return m, nil
		}
		m.formError = ""
		m.state = constants.StateHabits
		return m, tea.Batch(loadHabitsCmd(m.habits), loadJournalCmd(m.journal))

	case loggedOutMsg:
		m.chatModel.SetMessages(nil)
		m.enterLogin()
		return m, nil

	case habitsLoadedMsg:
		m.refreshHabits()
		return m, nil

	case habitCheckedMsg:
		if msg.err != nil && !errors.Is(msg.err, habits.ErrAlreadyCompleted) {
			m.status = msg.err.Error()
		}
		m.habitList.SetHabits(m.habits.Habits())
		return m, nil

	case habitAddedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		m.habitList.SetHabits(m.habits.Habits())
		m.state = constants.StateHabits
		return m, nil

	case habitDeletedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		m.habitList.SetHabits(m.habits.Habits())
		return m, nil

	case journalLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		m.clampJournalCursor()
		return m, nil

	case entryAddedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		m.journalCursor = 0
		m.state = constants.StateJournal
		return m, nil

	case entryDeletedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		m.clampJournalCursor()
		return m, nil

	case chatRepliedMsg:
		m.chatModel.SetWaiting(false)
		m.chatModel.SetMessages(m.chat.Messages())
		// A coach suggestion may have created a habit.
		m.habitList.SetHabits(m.habits.Habits())
		return m, nil

	case habitlist.AddHabitMsg:
		m.openHabitForm()
		return m, m.form.Init()

	case habitlist.CheckHabitMsg:
		return m, checkHabitCmd(m.habits, msg.ID)

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case chatview.SubmitMsg:
		m.chatModel.SetWaiting(true)
		return m, sendChatCmd(m.chat, msg.Text)

	case tea.KeyMsg:
		// The chat input swallows most keys; only control chords and
		// tab switching stay global there.
		if m.state == constants.StateChat {
			switch {
			case msg.Type == tea.KeyCtrlC:
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Tab):
				m.nextTab()
				return m, nil
			case key.Matches(msg, m.keys.ShiftTab):
				m.prevTab()
				return m, nil
			case key.Matches(msg, m.keys.Logout):
				return m, logoutCmd(m.session)
			default:
				var cmd tea.Cmd
				m.chatModel, cmd = m.chatModel.Update(msg)
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.nextTab()
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.prevTab()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, tea.Batch(loadHabitsCmd(m.habits), loadJournalCmd(m.journal))
		case key.Matches(msg, m.keys.Logout):
			return m, logoutCmd(m.session)
		}

		switch m.state {
		case constants.StateHabits:
			var cmd tea.Cmd
			m.habitList, cmd = m.habitList.Update(msg)
			return m, cmd

		case constants.StateCalendar:
			switch {
			case key.Matches(msg, m.keys.Left):
				m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
			case key.Matches(msg, m.keys.Right):
				m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
			}
			return m, nil

		case constants.StateJournal:
			entries := m.journal.Entries()
			switch {
			case key.Matches(msg, m.keys.Up):
				if m.journalCursor > 0 {
					m.journalCursor--
				}
			case key.Matches(msg, m.keys.Down):
				if m.journalCursor < len(entries)-1 {
					m.journalCursor++
				}
			case key.Matches(msg, m.keys.Add):
				m.openEntryForm()
				return m, m.form.Init()
			case key.Matches(msg, m.keys.Delete):
				if m.journalCursor < len(entries) {
					m.entryToDeleteID = entries[m.journalCursor].ID
					m.state = constants.StateConfirmEntryDelete
				}
			}
			return m, nil
		}
	}

	// Non-key messages reach the focused component.
	switch m.state {
	case constants.StateHabits:
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateChat:
		var cmd tea.Cmd
		m.chatModel, cmd = m.chatModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
