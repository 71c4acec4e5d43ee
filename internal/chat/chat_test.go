package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/arun-chaudhary3116/HabitMate/internal/api"
	"github.com/arun-chaudhary3116/HabitMate/internal/habits"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

type fakeAPI struct {
	reply *api.ChatReply
	err   error
	calls int
}

func (f *fakeAPI) Chat(ctx context.Context, message string) (*api.ChatReply, error) {
	f.calls++
	return f.reply, f.err
}

type fakeCreator struct {
	created *models.Habit
	err     error
	fields  habits.Fields
	calls   int
}

func (f *fakeCreator) Add(ctx context.Context, fields habits.Fields) (*models.Habit, error) {
	f.calls++
	f.fields = fields
	return f.created, f.err
}

func senders(msgs []models.ChatMessage) []models.ChatSender {
	out := make([]models.ChatSender, len(msgs))
	for i, m := range msgs {
		out[i] = m.Sender
	}
	return out
}

func TestSend_AppendsUserAndAIMessages(t *testing.T) {
	session := New(&fakeAPI{reply: &api.ChatReply{Reply: "Start small!"}}, nil)

	if err := session.Send(context.Background(), "how do I start?"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	msgs := session.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Sender != models.SenderUser || msgs[0].Content != "how do I start?" {
		t.Errorf("unexpected user message: %+v", msgs[0])
	}
	if msgs[1].Sender != models.SenderAI || msgs[1].Content != "Start small!" {
		t.Errorf("unexpected ai message: %+v", msgs[1])
	}
	if msgs[0].ID == msgs[1].ID || msgs[0].ID == "" {
		t.Error("messages must carry distinct non-empty ids")
	}
}

func TestSend_RejectsEmptyMessage(t *testing.T) {
	apiClient := &fakeAPI{}
	session := New(apiClient, nil)

	if err := session.Send(context.Background(), "   "); err == nil {
		t.Error("expected validation error")
	}
	if apiClient.calls != 0 {
		t.Errorf("empty message must not hit the network, got %d calls", apiClient.calls)
	}
	if len(session.Messages()) != 0 {
		t.Error("transcript should stay empty")
	}
}

func TestSend_FailureAppendsSystemErrorLine(t *testing.T) {
	session := New(&fakeAPI{err: errors.New("boom")}, nil)

	if err := session.Send(context.Background(), "hi"); err == nil {
		t.Error("expected send error")
	}

	msgs := session.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected user line plus system error line, got %d", len(msgs))
	}
	if msgs[1].Sender != models.SenderSystem || !strings.Contains(msgs[1].Content, "Failed to get a response") {
		t.Errorf("unexpected system line: %+v", msgs[1])
	}
}

func TestSend_SuggestionCreatesHabitAndAppendsNotice(t *testing.T) {
	apiClient := &fakeAPI{reply: &api.ChatReply{
		Reply: "Try meditating!",
		Suggestion: &api.HabitSuggestion{
			Name: "Meditate", Goal: "5 minutes", Category: "Mindfulness",
		},
	}}
	creator := &fakeCreator{created: &models.Habit{ID: "h1", Name: "Meditate", Goal: "5 minutes"}}
	session := New(apiClient, creator)

	if err := session.Send(context.Background(), "help me relax"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if creator.calls != 1 {
		t.Fatalf("suggested habit should be created once, got %d", creator.calls)
	}
	if creator.fields.Name != "Meditate" || creator.fields.Color != "bg-primary" {
		t.Errorf("unexpected creation fields: %+v", creator.fields)
	}

	got := senders(session.Messages())
	want := []models.ChatSender{models.SenderUser, models.SenderAI, models.SenderSystem}
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d sender = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSend_SuggestionCreationFailureIsNonFatal(t *testing.T) {
	apiClient := &fakeAPI{reply: &api.ChatReply{
		Reply:      "Try meditating!",
		Suggestion: &api.HabitSuggestion{Name: "Meditate"},
	}}
	creator := &fakeCreator{err: errors.New("boom")}
	session := New(apiClient, creator)

	if err := session.Send(context.Background(), "help"); err != nil {
		t.Errorf("suggestion creation failure should not fail the send, got %v", err)
	}

	msgs := session.Messages()
	last := msgs[len(msgs)-1]
	if last.Sender != models.SenderSystem || !strings.Contains(last.Content, "Could not create") {
		t.Errorf("expected a system notice about the failed creation, got %+v", last)
	}
}

func TestSend_NoCreatorShowsSuggestionOnly(t *testing.T) {
	apiClient := &fakeAPI{reply: &api.ChatReply{
		Reply:      "Try meditating!",
		Suggestion: &api.HabitSuggestion{Name: "Meditate"},
	}}
	session := New(apiClient, nil)

	if err := session.Send(context.Background(), "help"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(session.Messages()) != 2 {
		t.Error("without a creator the suggestion should not add a system line")
	}
}
