package api

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// ParseOAuthCallback extracts the user payload from an OAuth redirect
// URL's "user" query parameter. The payload arrives unauthenticated in
// the URL, so the result is display data only and must never be
// treated as an authorization credential; only the server-set session
// cookie authenticates subsequent calls.
func ParseOAuthCallback(rawURL string) (*models.User, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid callback URL: %w", err)
	}
	payload := u.Query().Get("user")
	if payload == "" {
		return nil, fmt.Errorf("callback URL carries no user parameter")
	}

	// The redirect may hand over either the backend's wire shape or the
	// already-mapped local shape; accept both.
	var w struct {
		wireUser
		Avatar     string `json:"avatar"`
		IsVerified *bool  `json:"isVerified"`
	}
	if err := json.Unmarshal([]byte(payload), &w); err != nil {
		return nil, fmt.Errorf("failed to parse OAuth user payload: %w", err)
	}

	user := w.wireUser.toUser()
	if user.Avatar == "" {
		user.Avatar = w.Avatar
	}
	if w.wireUser.IsEmailVerified == nil && w.IsVerified != nil {
		user.Verified = *w.IsVerified
	}
	if user.ID == "" && user.Email == "" {
		return nil, fmt.Errorf("OAuth user payload carries neither id nor email")
	}
	return &user, nil
}
