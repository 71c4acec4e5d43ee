package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	"github.com/arun-chaudhary3116/HabitMate/internal/dates"
	"github.com/arun-chaudhary3116/HabitMate/internal/habits"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateLogin:
		return m.viewLogin()
	case constants.StateAddHabit, constants.StateAddEntry:
		return docStyle.Render(m.form.View())
	case constants.StateConfirmDelete:
		return m.viewConfirmDelete()
	case constants.StateConfirmEntryDelete:
		return m.viewConfirmEntryDelete()
	}

	var content string
	switch m.state {
	case constants.StateHabits:
		content = docStyle.Render(m.habitList.View())
	case constants.StateCalendar:
		content = docStyle.Render(m.viewCalendar())
	case constants.StateStats:
		content = docStyle.Render(m.viewStats())
	case constants.StateJournal:
		content = docStyle.Render(m.viewJournal())
	case constants.StateChat:
		content = docStyle.Render(m.chatModel.View())
	}

	var status string
	if m.status != "" {
		status = warningStyle.Render("⚠ " + m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		status,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Habits", "Calendar", "Stats", "Journal", "Chat"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewLogin() string {
	view := m.form.View()
	if m.formError != "" {
		view = dangerStyle.Render(m.formError) + "\n\n" + view
	}
	return docStyle.Render(view)
}

func (m Model) viewCalendar() string {
	list := m.habits.Habits()
	first := time.Date(m.calendarMonth.Year(), m.calendarMonth.Month(), 1, 0, 0, 0, 0, time.Local)

	var b strings.Builder
	b.WriteString(statStyle.Render(first.Format("January 2006")))
	b.WriteString("\n\n Su Mo Tu We Th Fr Sa\n")
	b.WriteString(strings.Repeat("   ", int(first.Weekday())))

	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%2d", day.Day())
		switch {
		case dates.IsToday(day):
			cell = todayStyle.Render(cell)
		case len(habits.CompletedOn(list, day)) > 0:
			cell = doneDayStyle.Render(cell)
		}
		b.WriteString(" " + cell)
		if day.Weekday() == time.Saturday {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf(" %s today  %s completed\n",
		todayStyle.Render("●"), doneDayStyle.Render("●")))
	return b.String()
}

func (m Model) viewStats() string {
	list := m.habits.Habits()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Habits:       %s\n", statStyle.Render(fmt.Sprintf("%d", len(list)))))
	b.WriteString(fmt.Sprintf("Done today:   %s\n", statStyle.Render(fmt.Sprintf("%d", habits.CompletedToday(list)))))
	b.WriteString(fmt.Sprintf("Success rate: %s\n", statStyle.Render(fmt.Sprintf("%d%%", habits.SuccessRate(list)))))
	b.WriteString(fmt.Sprintf("Total streak: %s\n", statStyle.Render(fmt.Sprintf("%d", habits.TotalStreak(list)))))

	b.WriteString("\nLast 7 days\n")
	for _, day := range habits.WeeklyCompletions(list, time.Now()) {
		b.WriteString(fmt.Sprintf("  %-3s %s\n",
			day.Day, doneDayStyle.Render(strings.Repeat("█", day.Completed))))
	}

	byCategory := habits.ByCategory(list)
	if len(byCategory) > 0 {
		b.WriteString("\nBy category\n")
		for _, cat := range byCategory {
			b.WriteString(fmt.Sprintf("  %-13s %d/%d\n", cat.Name, cat.Completed, cat.Total))
		}
	}
	return b.String()
}

func (m Model) viewJournal() string {
	entries := m.journal.Entries()
	if len(entries) == 0 {
		return "\n  No journal entries yet.\n  Press 'a' to write one."
	}

	var b strings.Builder
	for i, e := range entries {
		cursor := "  "
		if i == m.journalCursor {
			cursor = statStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor,
			dates.DayString(e.Date),
			warningStyle.Render("["+string(e.Mood)+"]")))
		b.WriteString("    " + e.Content + "\n\n")
	}
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	name := m.habitToDeleteID
	if h, ok := m.habits.Find(m.habitToDeleteID); ok {
		name = h.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmEntryDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this journal entry?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
