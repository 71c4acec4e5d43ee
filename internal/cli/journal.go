package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/arun-chaudhary3116/HabitMate/internal/dates"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
	"github.com/arun-chaudhary3116/HabitMate/internal/validation"
)

type JournalListCmd struct{}

func (c *JournalListCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	if _, err := appCtx.EnsureUser(ctx); err != nil {
		return err
	}
	if err := appCtx.Journal.Load(ctx); err != nil {
		return err
	}

	entries := appCtx.Journal.Entries()
	if len(entries) == 0 {
		fmt.Println("No journal entries yet. Add one with 'habitmate journal add'.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s [%s] (id %s)\n", dates.DayString(e.Date), e.Mood, e.ID)
		fmt.Printf("    %s\n", e.Content)
	}
	return nil
}

type JournalAddCmd struct {
	Content []string `arg:"" optional:"" help:"Entry text."`
	Mood    string   `short:"m" help:"Mood tag." default:"Neutral"`
}

func (c *JournalAddCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	if _, err := appCtx.EnsureUser(ctx); err != nil {
		return err
	}

	content := strings.Join(c.Content, " ")
	if content == "" {
		moodOpts := make([]huh.Option[string], len(models.Moods))
		for i, m := range models.Moods {
			moodOpts[i] = huh.NewOption(string(m), string(m))
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title("What's on your mind?").
					Value(&content).
					Validate(func(s string) error {
						return validation.Required("content", s)
					}),
				huh.NewSelect[string]().
					Title("Mood").
					Options(moodOpts...).
					Value(&c.Mood),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.Mood(c.Mood); err != nil {
		return err
	}

	entry, err := appCtx.Journal.Add(ctx, content, models.Mood(c.Mood))
	if err != nil {
		return err
	}
	fmt.Printf("Added entry for %s (ID: %s)\n", dates.DayString(entry.Date), entry.ID)
	return nil
}

type JournalDeleteCmd struct {
	ID  string `arg:"" help:"Entry ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *JournalDeleteCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	if _, err := appCtx.EnsureUser(ctx); err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Delete this journal entry?").
					Value(&confirmed),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := appCtx.Journal.Delete(ctx, c.ID); err != nil {
		return err
	}
	fmt.Println("Deleted entry.")
	return nil
}
