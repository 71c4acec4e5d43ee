package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// ListEntries fetches all journal entries for the current user.
func (c *Client) ListEntries(ctx context.Context) ([]models.JournalEntry, error) {
	var out []wireJournalEntry
	if err := c.do(ctx, http.MethodGet, "/journal", nil, &out); err != nil {
		return nil, err
	}
	entries := make([]models.JournalEntry, len(out))
	for i, w := range out {
		entries[i] = w.toEntry()
	}
	return entries, nil
}

// CreateEntry posts a journal entry and returns the saved record.
func (c *Client) CreateEntry(ctx context.Context, content string, mood models.Mood) (*models.JournalEntry, error) {
	body := map[string]string{
		"content": content,
		"mood":    string(mood),
	}
	var out wireJournalEntry
	if err := c.do(ctx, http.MethodPost, "/journal", body, &out); err != nil {
		return nil, err
	}
	entry := out.toEntry()
	return &entry, nil
}

// DeleteEntry removes a journal entry on the server.
func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/journal/"+url.PathEscape(id), nil, nil)
}
