package session

import (
	"context"
	"errors"
	"testing"

	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

type fakeAPI struct {
	meUser     *models.User
	meErr      error
	loginUser  *models.User
	loginErr   error
	logoutErr  error
	registered bool

	logoutCalls  int
	persistCalls int
	clearCalls   int
}

func (f *fakeAPI) Me(ctx context.Context) (*models.User, error) {
	return f.meUser, f.meErr
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*models.User, error) {
	return f.loginUser, f.loginErr
}

func (f *fakeAPI) Register(ctx context.Context, email, password, username string) error {
	f.registered = true
	return nil
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAPI) PersistSession() error {
	f.persistCalls++
	return nil
}

func (f *fakeAPI) ClearSession() error {
	f.clearCalls++
	return nil
}

type fakeSnapshots struct {
	user *models.User
}

func (f *fakeSnapshots) SaveUser(u models.User) error {
	f.user = &u
	return nil
}

func (f *fakeSnapshots) LoadUser() (*models.User, error) {
	if f.user == nil {
		return nil, errors.New("no snapshot")
	}
	return f.user, nil
}

func (f *fakeSnapshots) ClearUser() error {
	f.user = nil
	return nil
}

func TestResolve_Success(t *testing.T) {
	api := &fakeAPI{meUser: &models.User{ID: "u1", Name: "ada", Email: "a@b.c"}}
	store := New(api)

	if !store.Loading() {
		t.Error("store should start in the loading state")
	}

	if err := store.Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if store.Loading() {
		t.Error("loading flag should clear after resolution")
	}
	user := store.User()
	if user == nil || user.ID != "u1" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestResolve_FailureAlwaysTerminatesLoading(t *testing.T) {
	api := &fakeAPI{meErr: errors.New("network down")}
	store := New(api)

	if err := store.Resolve(context.Background()); err == nil {
		t.Error("expected resolve error")
	}
	if store.Loading() {
		t.Error("loading flag must clear on failure too")
	}
	if store.User() != nil {
		t.Error("user must be absent after failed resolution")
	}
}

func TestLogin_ReplacesUserAndPersistsSession(t *testing.T) {
	api := &fakeAPI{
		meUser:    &models.User{ID: "old", Name: "old"},
		loginUser: &models.User{ID: "u2", Name: "grace", Email: "g@b.c"},
	}
	store := New(api)
	_ = store.Resolve(context.Background())

	if err := store.Login(context.Background(), "g@b.c", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	user := store.User()
	if user == nil || user.ID != "u2" {
		t.Errorf("login must replace the user wholesale, got %+v", user)
	}
	if api.persistCalls != 1 {
		t.Errorf("login should persist the session cookie once, got %d", api.persistCalls)
	}
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	api := &fakeAPI{
		meUser:   &models.User{ID: "u1", Name: "ada"},
		loginErr: errors.New("Invalid email or password"),
	}
	store := New(api)
	_ = store.Resolve(context.Background())

	err := store.Login(context.Background(), "a@b.c", "wrong")
	if err == nil || err.Error() != "Invalid email or password" {
		t.Errorf("login error should surface verbatim, got %v", err)
	}
	if user := store.User(); user == nil || user.ID != "u1" {
		t.Errorf("failed login must not change the current user, got %+v", user)
	}
}

func TestLoginWithOAuth_DefaultsVerified(t *testing.T) {
	store := New(&fakeAPI{})

	store.LoginWithOAuth(models.User{ID: "u3", Name: "oauth", Email: "o@b.c"})

	user := store.User()
	if user == nil || user.ID != "u3" {
		t.Fatalf("OAuth user not installed: %+v", user)
	}
	if user.Verified {
		t.Error("verified flag must stay false unless the payload set it")
	}
	if store.Loading() {
		t.Error("OAuth login should terminate the loading state")
	}
}

func TestRegister_FollowsWithLogin(t *testing.T) {
	api := &fakeAPI{loginUser: &models.User{ID: "u4", Name: "new"}}
	store := New(api)

	if err := store.Register(context.Background(), "n@b.c", "pw", "new"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !api.registered {
		t.Error("register endpoint was not called")
	}
	if user := store.User(); user == nil || user.ID != "u4" {
		t.Errorf("registration should end signed in, got %+v", user)
	}
}

func TestLogout_ClearsStateAndFiresLandingHook(t *testing.T) {
	tests := []struct {
		name      string
		logoutErr error
	}{
		{"server logout succeeds", nil},
		{"server logout fails", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{
				meUser:    &models.User{ID: "u1", Name: "ada"},
				logoutErr: tt.logoutErr,
			}
			snaps := &fakeSnapshots{}
			landed := false
			store := New(api,
				WithSnapshots(snaps),
				WithLandingHook(func() { landed = true }),
			)
			_ = store.Resolve(context.Background())
			if snaps.user == nil {
				t.Fatal("resolve should cache a snapshot")
			}

			store.Logout(context.Background())

			if store.User() != nil {
				t.Error("user must be cleared regardless of network outcome")
			}
			if !landed {
				t.Error("landing hook must fire regardless of network outcome")
			}
			if snaps.user != nil {
				t.Error("cached snapshot must be cleared on logout")
			}
			if api.clearCalls != 1 {
				t.Errorf("stored session should be cleared once, got %d", api.clearCalls)
			}
		})
	}
}

func TestCachedUser(t *testing.T) {
	snaps := &fakeSnapshots{user: &models.User{ID: "u1", Name: "ada"}}
	store := New(&fakeAPI{meErr: errors.New("offline")}, WithSnapshots(snaps))

	_ = store.Resolve(context.Background())

	cached := store.CachedUser()
	if cached == nil || cached.ID != "u1" {
		t.Errorf("cached snapshot should survive a failed resolve, got %+v", cached)
	}

	if New(&fakeAPI{}).CachedUser() != nil {
		t.Error("store without snapshots should return nil cached user")
	}
}
