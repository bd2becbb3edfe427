// Package cli implements the planner command-line client. Commands are the
// UI boundary of the engine: they own the prompts, the minimum-date
// admission rule for the calendar, and the confirmation gesture before a
// trip is submitted.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmoraes/planner/internal/config"
	"github.com/jmoraes/planner/internal/domain"
	"github.com/jmoraes/planner/internal/identity"
	"github.com/jmoraes/planner/internal/session"
	"github.com/jmoraes/planner/internal/trip"
	"github.com/jmoraes/planner/internal/tripapi"
)

// App carries the wired dependencies shared by all commands. It is
// populated once in the root command's PersistentPreRunE.
type App struct {
	configPath string

	cfg   config.Config
	log   *slog.Logger
	store session.Store
	api   *tripapi.Client
	trips *trip.Service

	owner    domain.Owner
	ownerErr error
}

// NewRootCmd builds the planner command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Plan a trip and manage the active one",
		Long:          "planner creates trips through a step-by-step flow, remembers the active trip on this device, and manages its guests and links.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd)
		},
		// Bare "planner" behaves like "planner status": resume the active
		// trip or point the user at trip creation.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, app)
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", config.DefaultPath(), "path to the config file")

	root.AddCommand(
		newStatusCmd(app),
		newPlanCmd(app),
		newUpdateCmd(app),
		newGuestsCmd(app),
		newConfirmCmd(app),
		newLinksCmd(app),
		newInviteCmd(app),
		newSignoutCmd(app),
	)
	return root
}

// init loads config and wires the dependency graph. A session store that
// cannot be opened does not abort the command: per the engine's fail-open
// rule the app degrades to "no active trip" behavior instead.
func (a *App) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)

	if err := os.MkdirAll(filepath.Dir(cfg.StorePath), 0o700); err != nil {
		a.log.Warn("could not create store directory", "path", cfg.StorePath, "error", err)
	}
	store, err := session.Open(cfg.StorePath)
	if err != nil {
		a.log.Warn("session store unavailable", "path", cfg.StorePath, "error", err)
		a.store = unavailableStore{}
	} else {
		a.store = store
		cobra.OnFinalize(func() { store.Close() })
	}

	a.api = tripapi.New(cfg.APIBaseURL, cfg.AuthToken, a.log)
	a.trips = trip.NewService(a.api, a.store, a.log)
	a.owner, a.ownerErr = identity.Resolve(cfg.OwnerName, cfg.OwnerEmail, cfg.AuthToken)
	return nil
}

// requireTripID returns the active trip id or a user-facing error telling
// the user to create a trip first.
func (a *App) requireTripID(ctx context.Context) (string, error) {
	tripID, err := a.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("no active trip on this device; run \"planner plan\" first")
	}
	return tripID, nil
}

// unavailableStore is the degraded session store used when the real one
// cannot be opened. Reads report an empty slot's sibling error so every
// caller takes its fail-open path; writes fail loudly enough to log.
type unavailableStore struct{}

func (unavailableStore) Save(context.Context, string) error {
	return domain.ErrStorageUnavailable
}

func (unavailableStore) Get(context.Context) (string, error) {
	return "", domain.ErrStorageUnavailable
}

func (unavailableStore) Remove(context.Context) error {
	return domain.ErrStorageUnavailable
}

var _ session.Store = unavailableStore{}
