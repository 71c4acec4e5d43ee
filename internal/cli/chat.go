package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
	"github.com/arun-chaudhary3116/HabitMate/internal/validation"
)

type ChatCmd struct {
	Message []string `arg:"" optional:"" help:"Message for the habit coach."`
}

func (c *ChatCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	if _, err := appCtx.EnsureUser(ctx); err != nil {
		return err
	}

	message := strings.Join(c.Message, " ")
	if message == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Ask the habit coach").
					Value(&message).
					Validate(func(s string) error {
						return validation.Required("message", s)
					}),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := appCtx.Chat.Send(ctx, message); err != nil {
		return err
	}

	// Skip the echoed user line; print the coach's reply and any
	// habit-creation notices.
	for _, msg := range appCtx.Chat.Messages() {
		switch msg.Sender {
		case models.SenderAI:
			fmt.Printf("coach: %s\n", msg.Content)
		case models.SenderSystem:
			fmt.Printf("       %s\n", msg.Content)
		}
	}
	return nil
}
