package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// ErrNotAuthenticated is returned by Me when the backend does not
// recognize the session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Me resolves the current session against the identity endpoint.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out struct {
		Success bool      `json:"success"`
		User    *wireUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &out); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	if !out.Success || out.User == nil {
		return nil, ErrNotAuthenticated
	}
	user := out.User.toUser()
	return &user, nil
}

// Login authenticates with email and password. A rejected attempt
// surfaces the server's own message when the response body carried one.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Data struct {
			User *wireUser `json:"user"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/login", body, &out); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Message == "" {
			apiErr.Message = "login failed"
		}
		return nil, err
	}
	if out.Data.User == nil {
		return nil, fmt.Errorf("login response carried no user record")
	}
	user := out.Data.User.toUser()
	return &user, nil
}

// Register creates an account. Callers follow a successful
// registration with Login, matching the backend's signup flow.
func (c *Client) Register(ctx context.Context, email, password, username string) error {
	body := map[string]string{
		"email":    email,
		"password": password,
		"username": username,
	}
	if err := c.do(ctx, http.MethodPost, "/users/register", body, nil); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Message == "" {
			apiErr.Message = "signup failed"
		}
		return err
	}
	return nil
}

// Logout asks the backend to invalidate the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/users/logout", nil, nil)
}
