package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
	"github.com/arun-chaudhary3116/HabitMate/internal/validation"
)

func newLoginForm(fm *LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Welcome to HabitMate").
				Options(
					huh.NewOption("Sign in", false),
					huh.NewOption("Create an account", true),
				).
				Value(&fm.Register),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					return validation.Required("name", s)
				}),
		).WithHideFunc(func() bool { return !fm.Register }),
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&fm.Email).
				Validate(validation.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(func(s string) error {
					if fm.Register {
						return validation.Password(s)
					}
					return validation.Required("password", s)
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	categoryOpts := make([]huh.Option[string], len(constants.Categories))
	for i, cat := range constants.Categories {
		categoryOpts[i] = huh.NewOption(cat, cat)
	}
	colorOpts := make([]huh.Option[string], len(constants.Colors))
	for i, col := range constants.Colors {
		colorOpts[i] = huh.NewOption(col.Name, col.Value)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					return validation.Required("name", s)
				}),
			huh.NewInput().
				Title("Goal").
				Value(&fm.Goal),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&fm.Category),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOpts...).
				Value(&fm.Color),
		),
	).WithTheme(huh.ThemeDracula())
}

func newEntryForm(fm *EntryFormModel) *huh.Form {
	moodOpts := make([]huh.Option[string], len(models.Moods))
	for i, m := range models.Moods {
		moodOpts[i] = huh.NewOption(string(m), string(m))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What's on your mind?").
				Value(&fm.Content).
				Validate(func(s string) error {
					return validation.Required("content", s)
				}),
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOpts...).
				Value(&fm.Mood),
		),
	).WithTheme(huh.ThemeDracula())
}
