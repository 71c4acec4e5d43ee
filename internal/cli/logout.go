package cli

import "fmt"

type LogoutCmd struct{}

func (c *LogoutCmd) Run(appCtx *Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	// Local state is cleared even when the server call fails.
	appCtx.Session.Logout(ctx)
	fmt.Println("Signed out.")
	return nil
}
