package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	"github.com/arun-chaudhary3116/HabitMate/internal/habits"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
	"github.com/arun-chaudhary3116/HabitMate/internal/validation"
)

type HabitAddCmd struct {
	Name     string `arg:"" optional:"" help:"Habit name."`
	Goal     string `short:"g" help:"Daily goal description." default:"Daily goal"`
	Category string `short:"c" help:"Habit category." default:"General"`
	Color    string `help:"Color token shown in the web app." default:"bg-primary"`
}

func (c *HabitAddCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	if _, err := appCtx.EnsureUser(ctx); err != nil {
		return err
	}

	if c.Name == "" {
		categoryOpts := make([]huh.Option[string], len(constants.Categories))
		for i, cat := range constants.Categories {
			categoryOpts[i] = huh.NewOption(cat, cat)
		}
		colorOpts := make([]huh.Option[string], len(constants.Colors))
		for i, col := range constants.Colors {
			colorOpts[i] = huh.NewOption(col.Name, col.Value)
		}
		c.Category = constants.Categories[0]
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Habit Name").
					Value(&c.Name).
					Validate(func(s string) error {
						return validation.Required("name", s)
					}),
				huh.NewInput().
					Title("Goal").
					Value(&c.Goal),
				huh.NewSelect[string]().
					Title("Category").
					Options(categoryOpts...).
					Value(&c.Category),
				huh.NewSelect[string]().
					Title("Color").
					Options(colorOpts...).
					Value(&c.Color),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validateHabitInput(c.Name, c.Goal, c.Category, c.Color); err != nil {
		return err
	}

	if err := appCtx.Habits.Load(ctx); err != nil {
		return err
	}
	habit, err := appCtx.Habits.Add(ctx, habits.Fields{
		Name:     c.Name,
		Goal:     c.Goal,
		Category: c.Category,
		Color:    c.Color,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

// validateHabitInput checks every add-habit flag. "General" is the
// backend's own default category, not a pickable one, so it is exempt
// from the category list check; name, goal and color are always
// validated.
func validateHabitInput(name, goal, category, color string) error {
	if err := validation.Required("name", name); err != nil {
		return err
	}
	if err := validation.Required("goal", goal); err != nil {
		return err
	}
	if category != constants.DefaultCategory {
		if err := validation.Category(category); err != nil {
			return err
		}
	}
	return validation.Color(color)
}

type HabitListCmd struct {
	Cached bool `help:"Show the last cached list without contacting the server."`
}

func (c *HabitListCmd) Run(appCtx *Context) error {
	var list []models.Habit

	if c.Cached {
		list = appCtx.Habits.CachedHabits()
	} else {
		ctx, cancel := requestContext()
		defer cancel()
		if _, err := appCtx.EnsureUser(ctx); err != nil {
			return err
		}
		if err := appCtx.Habits.Load(ctx); err != nil {
			return err
		}
		list = appCtx.Habits.Habits()
	}

	if len(list) == 0 {
		fmt.Println("No habits yet. Add one with 'habitmate habit add'.")
		return nil
	}
	for _, h := range list {
		fmt.Printf("%s %s\n", checkMark(h.Completed), h.Name)
		fmt.Printf("    %s · %s · streak %d · id %s\n", h.Goal, h.Category, h.Streak, h.ID)
	}
	if c.Cached {
		fmt.Println("(cached)")
	}
	return nil
}

type HabitCheckCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
}

func (c *HabitCheckCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	if _, err := appCtx.EnsureUser(ctx); err != nil {
		return err
	}
	if err := appCtx.Habits.Load(ctx); err != nil {
		return err
	}

	habit, ok := appCtx.Habits.Find(c.Habit)
	if !ok {
		return fmt.Errorf("no habit matching %q", c.Habit)
	}
	if err := appCtx.Habits.Toggle(ctx, habit.ID); err != nil {
		if errors.Is(err, habits.ErrAlreadyCompleted) {
			fmt.Printf("%s is already done for today.\n", habit.Name)
			return nil
		}
		return err
	}

	checked, _ := appCtx.Habits.Find(habit.ID)
	fmt.Printf("✓ %s (streak %d)\n", checked.Name, checked.Streak)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	if _, err := appCtx.EnsureUser(ctx); err != nil {
		return err
	}
	if err := appCtx.Habits.Load(ctx); err != nil {
		return err
	}

	habit, ok := appCtx.Habits.Find(c.Habit)
	if !ok {
		return fmt.Errorf("no habit matching %q", c.Habit)
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete habit %q?", habit.Name)).
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

	if err := appCtx.Habits.Delete(ctx, habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	if _, err := appCtx.EnsureUser(ctx); err != nil {
		return err
	}
	if err := appCtx.Habits.Load(ctx); err != nil {
		return err
	}

	list := appCtx.Habits.Habits()
	today := habits.TodaysHabits(list, time.Now())
	fmt.Printf("Today: %d/%d completed\n", habits.CompletedToday(list), len(list))
	for _, h := range today {
		fmt.Printf("%s %s (%s)\n", checkMark(h.Completed), h.Name, h.Goal)
	}
	return nil
}

type HabitStatsCmd struct{}

func (c *HabitStatsCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	if _, err := appCtx.EnsureUser(ctx); err != nil {
		return err
	}
	if err := appCtx.Habits.Load(ctx); err != nil {
		return err
	}

	list := appCtx.Habits.Habits()
	fmt.Printf("Habits:        %d\n", len(list))
	fmt.Printf("Done today:    %d\n", habits.CompletedToday(list))
	fmt.Printf("Success rate:  %d%%\n", habits.SuccessRate(list))
	fmt.Printf("Total streak:  %d\n", habits.TotalStreak(list))

	fmt.Println("\nLast 7 days:")
	for _, day := range habits.WeeklyCompletions(list, time.Now()) {
		fmt.Printf("  %-3s %s\n", day.Day, strings.Repeat("█", day.Completed))
	}

	byCategory := habits.ByCategory(list)
	if len(byCategory) > 0 {
		fmt.Println("\nBy category:")
		for _, cat := range byCategory {
			fmt.Printf("  %-13s %d/%d done today\n", cat.Name, cat.Completed, cat.Total)
		}
	}
	return nil
}
