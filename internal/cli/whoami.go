package cli

import (
	"fmt"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

type WhoamiCmd struct {
	Cached bool `help:"Show the last cached user without contacting the server."`
}

func (c *WhoamiCmd) Run(appCtx *Context) error {
	if c.Cached {
		user := appCtx.Session.CachedUser()
		if user == nil {
			return fmt.Errorf("no cached session")
		}
		printUser(user)
		fmt.Println("(cached)")
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	user, err := appCtx.EnsureUser(ctx)
	if err != nil {
		return err
	}
	printUser(user)
	return nil
}

func printUser(u *models.User) {
	fmt.Printf("%s <%s>\n", u.Name, u.Email)
	if u.Bio != "" {
		fmt.Printf("  %s\n", u.Bio)
	}
	if u.Verified {
		fmt.Println("  verified")
	}
}
