package chatview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// SubmitMsg is emitted when the user sends a message.
type SubmitMsg struct {
	Text string
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	coachStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	input    textinput.Model
	waiting  bool
}

func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask the habit coach..."
	ti.CharLimit = 500
	ti.Focus()

	vp := viewport.New(width, height)

	return Model{
		viewport: vp,
		input:    ti,
	}
}

// SetMessages re-renders the transcript and scrolls to the bottom.
func (m *Model) SetMessages(msgs []models.ChatMessage) {
	var lines []string
	for _, msg := range msgs {
		switch msg.Sender {
		case models.SenderUser:
			lines = append(lines, userStyle.Render("you:   ")+msg.Content)
		case models.SenderAI:
			lines = append(lines, coachStyle.Render("coach: ")+msg.Content)
		case models.SenderSystem:
			lines = append(lines, systemStyle.Render("       "+msg.Content))
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

// SetWaiting blocks further submissions while a reply is in flight.
func (m *Model) SetWaiting(waiting bool) {
	m.waiting = waiting
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		text := strings.TrimSpace(m.input.Value())
		if text != "" && !m.waiting {
			m.input.Reset()
			return m, func() tea.Msg { return SubmitMsg{Text: text} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	prompt := m.input.View()
	if m.waiting {
		prompt = systemStyle.Render("coach is thinking...")
	}
	return m.viewport.View() + "\n\n" + prompt
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
}
