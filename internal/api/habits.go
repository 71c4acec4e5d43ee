package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// NewHabit carries the user-entered fields of a habit to create.
type NewHabit struct {
	Name     string
	Goal     string
	Category string
	Color    string
}

// CheckResult is the backend's answer to a completion toggle. The
// server owns streak arithmetic; the client merges these values in
// without independent verification.
type CheckResult struct {
	Streak        int        `json:"streak"`
	LastCompleted *time.Time `json:"lastCompleted"`
}

// ListHabits fetches the habit collection for the current user, mapped
// to the local shape with history reconstructed.
func (c *Client) ListHabits(ctx context.Context) ([]models.Habit, error) {
	var out []wireHabit
	if err := c.do(ctx, http.MethodGet, "/habits", nil, &out); err != nil {
		return nil, err
	}
	now := time.Now()
	habits := make([]models.Habit, len(out))
	for i, w := range out {
		habits[i] = w.toHabit(now)
	}
	return habits, nil
}

// CreateHabit posts a new habit and returns the server-assigned record.
func (c *Client) CreateHabit(ctx context.Context, h NewHabit) (*models.Habit, error) {
	body := map[string]string{
		"title":       h.Name,
		"description": h.Goal,
		"category":    h.Category,
		"color":       h.Color,
	}
	var out wireHabit
	if err := c.do(ctx, http.MethodPost, "/habits", body, &out); err != nil {
		return nil, err
	}
	created := out.toHabit(time.Now())
	return &created, nil
}

// CheckHabit marks the habit completed for today on the server.
func (c *Client) CheckHabit(ctx context.Context, id string) (*CheckResult, error) {
	body := map[string]bool{"completed": true}
	var out CheckResult
	path := "/habits/" + url.PathEscape(id) + "/check"
	if err := c.do(ctx, http.MethodPatch, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteHabit removes the habit on the server.
func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/habits/"+url.PathEscape(id), nil, nil)
}
