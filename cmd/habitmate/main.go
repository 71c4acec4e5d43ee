package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/arun-chaudhary3116/HabitMate/internal/api"
	"github.com/arun-chaudhary3116/HabitMate/internal/cache"
	"github.com/arun-chaudhary3116/HabitMate/internal/chat"
	"github.com/arun-chaudhary3116/HabitMate/internal/cli"
	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	apperrors "github.com/arun-chaudhary3116/HabitMate/internal/errors"
	"github.com/arun-chaudhary3116/HabitMate/internal/habits"
	"github.com/arun-chaudhary3116/HabitMate/internal/journal"
	"github.com/arun-chaudhary3116/HabitMate/internal/keyring"
	"github.com/arun-chaudhary3116/HabitMate/internal/logger"
	"github.com/arun-chaudhary3116/HabitMate/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Snapshot cache path." type:"path" default:"~/.config/habitmate/habitmate.db"`
	Server  string `help:"HabitMate backend origin." default:"http://localhost:8000"`
	Debug   bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Login    cli.LoginCmd    `cmd:"" help:"Sign in to the backend."`
	Register cli.RegisterCmd `cmd:"" help:"Create an account and sign in."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Sign out and clear local state."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the signed-in user."`
	Habit    struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
		Check  cli.HabitCheckCmd  `cmd:"" help:"Check off a habit for today."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
		Today  cli.HabitTodayCmd  `cmd:"" help:"Show today's habits."`
		Stats  cli.HabitStatsCmd  `cmd:"" help:"Show habit statistics."`
	} `cmd:"" help:"Manage habits."`
	Journal struct {
		List   cli.JournalListCmd   `cmd:"" help:"List journal entries."`
		Add    cli.JournalAddCmd    `cmd:"" help:"Write a journal entry."`
		Delete cli.JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
	} `cmd:"" help:"Manage the journal."`
	Chat   cli.ChatCmd   `cmd:"" help:"Ask the habit coach."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracking companion for the HabitMate backend"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		apperrors.Fatal(err)
	}

	snapshots := cache.New(CLI.Config)
	if err := snapshots.Open(); err != nil {
		apperrors.Fatal(err)
	}
	defer snapshots.Close()

	apiClient, err := api.New(api.Config{
		BaseURL:     CLI.Server,
		Credentials: keyring.Store{},
	})
	if err != nil {
		apperrors.Fatal(err)
	}

	sess := session.New(apiClient,
		session.WithSnapshots(snapshots),
		session.WithLandingHook(func() {
			logger.Info("Session ended")
		}),
	)
	habitStore := habits.New(apiClient, sess, habits.WithSnapshots(snapshots))
	journalStore := journal.New(apiClient)
	chatSession := chat.New(apiClient, habitStore)

	appCtx := &cli.Context{
		API:     apiClient,
		Session: sess,
		Habits:  habitStore,
		Journal: journalStore,
		Chat:    chatSession,
		Cache:   snapshots,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
