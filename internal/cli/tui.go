package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arun-chaudhary3116/HabitMate/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(appCtx *Context) error {
	p := tea.NewProgram(
		tui.NewModel(appCtx.Session, appCtx.Habits, appCtx.Journal, appCtx.Chat),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
