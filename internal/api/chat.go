package api

import (
	"context"
	"fmt"
	"net/http"
)

// HabitSuggestion is a habit the assistant proposes alongside its
// reply; the caller creates it through the habit store.
type HabitSuggestion struct {
	Name     string `json:"habitName"`
	Goal     string `json:"goal"`
	Category string `json:"category"`
}

// ChatReply is the assistant's answer to one message.
type ChatReply struct {
	Reply      string
	Suggestion *HabitSuggestion
}

// Chat sends one message to the assistant endpoint.
func (c *Client) Chat(ctx context.Context, message string) (*ChatReply, error) {
	body := map[string]string{"message": message}
	var out struct {
		Success    bool             `json:"success"`
		HumanReply string           `json:"humanReply"`
		HabitJSON  *HabitSuggestion `json:"habitJson"`
	}
	if err := c.do(ctx, http.MethodPost, "/chat/chat", body, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("chat request was not successful")
	}
	return &ChatReply{Reply: out.HumanReply, Suggestion: out.HabitJSON}, nil
}
