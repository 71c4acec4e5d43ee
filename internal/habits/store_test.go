package habits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/api"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

type fakeAPI struct {
	habits    []models.Habit
	listErr   error
	created   *models.Habit
	createErr error
	check     *api.CheckResult
	checkErr  error
	deleteErr error

	listCalls   int
	createCalls int
	checkCalls  int
	deleteCalls int
}

func (f *fakeAPI) ListHabits(ctx context.Context) ([]models.Habit, error) {
	f.listCalls++
	return f.habits, f.listErr
}

func (f *fakeAPI) CreateHabit(ctx context.Context, h api.NewHabit) (*models.Habit, error) {
	f.createCalls++
	return f.created, f.createErr
}

func (f *fakeAPI) CheckHabit(ctx context.Context, id string) (*api.CheckResult, error) {
	f.checkCalls++
	return f.check, f.checkErr
}

func (f *fakeAPI) DeleteHabit(ctx context.Context, id string) error {
	f.deleteCalls++
	return f.deleteErr
}

type fakeGate struct {
	loading bool
	user    *models.User
}

func (f *fakeGate) Loading() bool      { return f.loading }
func (f *fakeGate) User() *models.User { return f.user }

func signedInGate() *fakeGate {
	return &fakeGate{user: &models.User{ID: "u1", Name: "ada"}}
}

func TestLoad_GuardedOnSession(t *testing.T) {
	tests := []struct {
		name string
		gate *fakeGate
	}{
		{"session still loading", &fakeGate{loading: true}},
		{"no user present", &fakeGate{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiClient := &fakeAPI{}
			store := New(apiClient, tt.gate)

			if err := store.Load(context.Background()); !errors.Is(err, ErrNoSession) {
				t.Errorf("expected ErrNoSession, got %v", err)
			}
			if apiClient.listCalls != 0 {
				t.Errorf("guarded load must not hit the network, got %d calls", apiClient.listCalls)
			}
		})
	}
}

func TestLoad_Success(t *testing.T) {
	apiClient := &fakeAPI{habits: []models.Habit{
		{ID: "h1", Name: "Read", Streak: 3},
		{ID: "h2", Name: "Run"},
	}}
	store := New(apiClient, signedInGate())

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := store.Habits(); len(got) != 2 {
		t.Errorf("expected 2 habits, got %d", len(got))
	}
	if store.Err() != "" {
		t.Errorf("no error message expected, got %q", store.Err())
	}
}

func TestLoad_FailureSetsMessageAndEmptiesCollection(t *testing.T) {
	apiClient := &fakeAPI{listErr: errors.New("connection refused")}
	store := New(apiClient, signedInGate())
	store.habits = []models.Habit{{ID: "stale"}}

	if err := store.Load(context.Background()); err == nil {
		t.Error("expected load error")
	}
	if store.Err() == "" {
		t.Error("a user-visible error message should be set")
	}
	if len(store.Habits()) != 0 {
		t.Error("collection must be left empty after a failed load")
	}
}

func TestToggle_RejectsSecondCompletionSameDayWithoutNetworkCall(t *testing.T) {
	now := time.Now()
	apiClient := &fakeAPI{}
	store := New(apiClient, signedInGate())
	store.habits = []models.Habit{
		{ID: "h1", Name: "Read", Completed: true, Streak: 4, LastCompleted: &now},
	}

	err := store.Toggle(context.Background(), "h1")
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("expected ErrAlreadyCompleted, got %v", err)
	}
	if apiClient.checkCalls != 0 {
		t.Errorf("same-day rejection must make zero network calls, got %d", apiClient.checkCalls)
	}
}

func TestToggle_MergesServerResultAndAppendsHistory(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	today := time.Now()
	apiClient := &fakeAPI{
		check: &api.CheckResult{Streak: 4, LastCompleted: &today},
	}
	store := New(apiClient, signedInGate())
	store.habits = []models.Habit{
		{
			ID: "h1", Name: "Read", Streak: 3, LastCompleted: &yesterday,
			History: []models.HistoryEntry{{Date: yesterday, Completed: true}},
		},
	}

	if err := store.Toggle(context.Background(), "h1"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if apiClient.checkCalls != 1 {
		t.Errorf("expected exactly one check call, got %d", apiClient.checkCalls)
	}

	h := store.Habits()[0]
	if !h.Completed {
		t.Error("habit should be completed after toggle")
	}
	if h.Streak != 4 {
		t.Errorf("streak = %d, want the server's 4", h.Streak)
	}
	if h.LastCompleted == nil || !h.LastCompleted.Equal(today) {
		t.Errorf("lastCompleted = %v, want %v", h.LastCompleted, today)
	}
	if len(h.History) != 2 {
		t.Fatalf("history should gain exactly one entry, got %d entries", len(h.History))
	}
	newest := h.History[len(h.History)-1]
	if !newest.Completed || newest.Date.Day() != time.Now().Day() {
		t.Errorf("new history entry should be a completion dated today: %+v", newest)
	}
}

func TestToggle_CompletedYesterdayIsNotRejected(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	today := time.Now()
	apiClient := &fakeAPI{check: &api.CheckResult{Streak: 1, LastCompleted: &today}}
	store := New(apiClient, signedInGate())
	// Completed flag still true from a stale snapshot, but the date is
	// yesterday: calendar-day comparison must let the toggle through.
	store.habits = []models.Habit{
		{ID: "h1", Completed: true, LastCompleted: &yesterday},
	}

	if err := store.Toggle(context.Background(), "h1"); err != nil {
		t.Errorf("toggle of a yesterday-completed habit should proceed, got %v", err)
	}
	if apiClient.checkCalls != 1 {
		t.Errorf("expected one network call, got %d", apiClient.checkCalls)
	}
}

func TestToggle_ServerFailureLeavesRecordUntouched(t *testing.T) {
	apiClient := &fakeAPI{checkErr: errors.New("boom")}
	store := New(apiClient, signedInGate())
	store.habits = []models.Habit{{ID: "h1", Streak: 3}}

	if err := store.Toggle(context.Background(), "h1"); err == nil {
		t.Error("expected toggle error")
	}
	h := store.Habits()[0]
	if h.Completed || h.Streak != 3 || len(h.History) != 0 {
		t.Errorf("failed toggle must not mutate the record: %+v", h)
	}
}

func TestToggle_UnknownHabit(t *testing.T) {
	store := New(&fakeAPI{}, signedInGate())
	if err := store.Toggle(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAdd_AppendsServerRecord(t *testing.T) {
	apiClient := &fakeAPI{
		created: &models.Habit{
			ID: "h1", Name: "Read", Goal: "20 pages",
			Category: "Learning", Color: "bg-primary",
		},
	}
	store := New(apiClient, signedInGate())

	created, err := store.Add(context.Background(), Fields{
		Name: "Read", Goal: "20 pages", Category: "Learning", Color: "bg-primary",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created.ID != "h1" {
		t.Errorf("unexpected created habit: %+v", created)
	}

	got := store.Habits()
	if len(got) != 1 {
		t.Fatalf("collection should contain one entry, got %d", len(got))
	}
	h := got[0]
	if h.ID != "h1" || h.Name != "Read" || h.Goal != "20 pages" || h.Completed || h.Streak != 0 {
		t.Errorf("unexpected local record: %+v", h)
	}
}

func TestAdd_FailurePropagatesWithoutMutation(t *testing.T) {
	apiClient := &fakeAPI{createErr: errors.New("Title is required")}
	store := New(apiClient, signedInGate())

	if _, err := store.Add(context.Background(), Fields{}); err == nil {
		t.Error("expected add error")
	}
	if len(store.Habits()) != 0 {
		t.Error("failed add must not mutate the collection")
	}
}

func TestDelete_RemovesOnlyAfterConfirmation(t *testing.T) {
	apiClient := &fakeAPI{}
	store := New(apiClient, signedInGate())
	store.habits = []models.Habit{{ID: "h1"}, {ID: "h2"}}

	if err := store.Delete(context.Background(), "h1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got := store.Habits()
	if len(got) != 1 || got[0].ID != "h2" {
		t.Errorf("unexpected collection after delete: %+v", got)
	}
}

func TestDelete_FailureKeepsLocalRecord(t *testing.T) {
	apiClient := &fakeAPI{deleteErr: errors.New("boom")}
	store := New(apiClient, signedInGate())
	store.habits = []models.Habit{{ID: "h1"}}

	if err := store.Delete(context.Background(), "h1"); err == nil {
		t.Error("expected delete error")
	}
	if len(store.Habits()) != 1 {
		t.Error("local record must survive a failed delete")
	}
}

func TestFind(t *testing.T) {
	store := New(&fakeAPI{}, signedInGate())
	store.habits = []models.Habit{{ID: "h1", Name: "Read"}}

	if h, ok := store.Find("h1"); !ok || h.Name != "Read" {
		t.Errorf("find by id failed: %v %v", h, ok)
	}
	if h, ok := store.Find("Read"); !ok || h.ID != "h1" {
		t.Errorf("find by name failed: %v %v", h, ok)
	}
	if _, ok := store.Find("missing"); ok {
		t.Error("find should report absence")
	}
}
