// Package chat keeps the local transcript of the assistant
// conversation. It is a fetch-and-render loop with no protocol state.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arun-chaudhary3116/HabitMate/internal/api"
	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	"github.com/arun-chaudhary3116/HabitMate/internal/habits"
	"github.com/arun-chaudhary3116/HabitMate/internal/logger"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// API is the slice of the backend client the chat session needs.
type API interface {
	Chat(ctx context.Context, message string) (*api.ChatReply, error)
}

// HabitCreator creates habits the assistant suggests. Satisfied by
// *habits.Store.
type HabitCreator interface {
	Add(ctx context.Context, f habits.Fields) (*models.Habit, error)
}

// Session holds one conversation transcript.
type Session struct {
	mu     sync.Mutex
	api    API
	habits HabitCreator

	messages []models.ChatMessage
}

// New creates an empty chat session. The habit creator may be nil, in
// which case suggestions are shown but not created.
func New(api API, creator HabitCreator) *Session {
	return &Session{api: api, habits: creator}
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Send posts one message. The user's line is appended immediately; the
// assistant's reply follows when the call settles. When the reply
// carries a habit suggestion, the habit is created right away and a
// system notice is appended. A failed call appends a system error line
// and returns the error.
func (s *Session) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("message cannot be empty")
	}

	s.append(models.SenderUser, text)

	reply, err := s.api.Chat(ctx, text)
	if err != nil {
		s.append(models.SenderSystem, "Error: Failed to get a response.")
		return err
	}

	s.append(models.SenderAI, reply.Reply)

	if reply.Suggestion != nil && s.habits != nil {
		created, err := s.habits.Add(ctx, habits.Fields{
			Name:     reply.Suggestion.Name,
			Goal:     reply.Suggestion.Goal,
			Category: reply.Suggestion.Category,
			Color:    constants.DefaultColor,
		})
		if err != nil {
			logger.Warn("Failed to create suggested habit", "habit", reply.Suggestion.Name, "error", err)
			s.append(models.SenderSystem, fmt.Sprintf("Could not create suggested habit %q.", reply.Suggestion.Name))
			return nil
		}
		s.append(models.SenderSystem, fmt.Sprintf("New habit created: %q → %s", created.Name, created.Goal))
	}
	return nil
}

func (s *Session) append(sender models.ChatSender, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, models.ChatMessage{
		ID:      uuid.New().String(),
		Sender:  sender,
		Content: content,
		SentAt:  time.Now(),
	})
}
