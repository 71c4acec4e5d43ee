package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arun-chaudhary3116/HabitMate/internal/api"
	"github.com/arun-chaudhary3116/HabitMate/internal/cache"
	"github.com/arun-chaudhary3116/HabitMate/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(appCtx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: backend reachable
	signedIn, err := checkBackendReachable(appCtx)
	if err != nil {
		fmt.Printf("❌ Backend reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Backend reachable: OK (%s)\n", appCtx.API.BaseURL())
	}

	// Check 2: session state (informational)
	if err != nil {
		fmt.Printf("⊘ Session: SKIPPED (backend not reachable)\n")
	} else if signedIn {
		fmt.Printf("✓ Session: signed in\n")
	} else {
		fmt.Printf("⚠ Session: not signed in\n")
		fmt.Printf("   Run 'habitmate login' to sign in\n")
	}

	// Check 3: keyring available (warning only, cookies just won't persist)
	if keyring.IsAvailable() {
		fmt.Printf("✓ Keyring: OK\n")
	} else {
		fmt.Printf("⚠ Keyring: WARNING\n")
		fmt.Printf("   No system keyring found; sessions will not survive restarts\n")
	}

	// Check 4: snapshot cache
	if err := checkSnapshotCache(appCtx.Cache); err != nil {
		fmt.Printf("❌ Snapshot cache: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Snapshot cache: OK (%s)\n", appCtx.Cache.Path())
	}

	// Check 5: log directory
	if err := checkLogDir(appCtx.Cache.Path()); err != nil {
		fmt.Printf("❌ Log directory: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Log directory: OK\n")
	}

	// Check 6: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

// checkBackendReachable asks the backend who we are. A clean "not
// authenticated" still proves the server answered.
func checkBackendReachable(appCtx *Context) (signedIn bool, err error) {
	ctx, cancel := requestContext()
	defer cancel()

	_, err = appCtx.API.Me(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, api.ErrNotAuthenticated) {
		return false, nil
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return false, nil
	}
	return false, err
}

func checkSnapshotCache(store *cache.Store) error {
	if err := store.Open(); err != nil {
		return err
	}
	if _, err := store.LoadUser(); err != nil && !errors.Is(err, cache.ErrNoSnapshot) {
		return err
	}
	return nil
}

// checkLogDir verifies the rotation target next to the snapshot cache.
func checkLogDir(cachePath string) error {
	dir := filepath.Join(filepath.Dir(cachePath), "logs")
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("log directory missing: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
