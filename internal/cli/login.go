package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/arun-chaudhary3116/HabitMate/internal/api"
	"github.com/arun-chaudhary3116/HabitMate/internal/validation"
)

type LoginCmd struct {
	Email         string `short:"e" help:"Account email."`
	Password      string `short:"p" help:"Account password."`
	OauthCallback string `help:"Redirect URL pasted from the browser after an OAuth sign-in."`
}

func (c *LoginCmd) Run(appCtx *Context) error {
	if c.OauthCallback != "" {
		user, err := api.ParseOAuthCallback(c.OauthCallback)
		if err != nil {
			return err
		}
		appCtx.Session.LoginWithOAuth(*user)
		fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Email)
		return nil
	}

	if c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&c.Email).
					Validate(validation.Email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password).
					Validate(func(s string) error {
						return validation.Required("password", s)
					}),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.Email(c.Email); err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := appCtx.Session.Login(ctx, c.Email, c.Password); err != nil {
		return err
	}
	user := appCtx.Session.User()
	fmt.Printf("Signed in as %s\n", user.Name)
	return nil
}
