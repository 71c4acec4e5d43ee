package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/arun-chaudhary3116/HabitMate/internal/validation"
)

type RegisterCmd struct {
	Name     string `short:"n" help:"Display name."`
	Email    string `short:"e" help:"Account email."`
	Password string `short:"p" help:"Account password."`
}

func (c *RegisterCmd) Run(appCtx *Context) error {
	if c.Name == "" || c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&c.Name).
					Validate(func(s string) error {
						return validation.Required("name", s)
					}),
				huh.NewInput().
					Title("Email").
					Value(&c.Email).
					Validate(validation.Email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password).
					Validate(validation.Password),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.Email(c.Email); err != nil {
		return err
	}
	if err := validation.Password(c.Password); err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	// Registration signs the new account in immediately.
	if err := appCtx.Session.Register(ctx, c.Email, c.Password, c.Name); err != nil {
		return err
	}
	user := appCtx.Session.User()
	if user == nil {
		fmt.Println("Account created. Run 'habitmate login' to sign in.")
		return nil
	}
	fmt.Printf("Welcome, %s! You are signed in.\n", user.Name)
	return nil
}
