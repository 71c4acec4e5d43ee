package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/api"
	"github.com/arun-chaudhary3116/HabitMate/internal/cache"
	"github.com/arun-chaudhary3116/HabitMate/internal/chat"
	"github.com/arun-chaudhary3116/HabitMate/internal/habits"
	"github.com/arun-chaudhary3116/HabitMate/internal/journal"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
	"github.com/arun-chaudhary3116/HabitMate/internal/session"
)

// Context carries the wired stores into every command's Run method.
type Context struct {
	API     *api.Client
	Session *session.Store
	Habits  *habits.Store
	Journal *journal.Store
	Chat    *chat.Session
	Cache   *cache.Store
}

// requestTimeout bounds every one-shot command's network round trip.
const requestTimeout = 15 * time.Second

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// EnsureUser resolves the persisted session and fails with a hint when
// nobody is signed in.
func (c *Context) EnsureUser(ctx context.Context) (*models.User, error) {
	if err := c.Session.Resolve(ctx); err != nil {
		return nil, err
	}
	user := c.Session.User()
	if user == nil {
		return nil, fmt.Errorf("not signed in (run 'habitmate login')")
	}
	return user, nil
}

func checkMark(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}
