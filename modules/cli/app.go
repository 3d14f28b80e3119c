package cli

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nadhirdhanu/task-tracker-cli/modules/config"
	"github.com/nadhirdhanu/task-tracker-cli/modules/identity"
	"github.com/nadhirdhanu/task-tracker-cli/modules/session"
	"github.com/nadhirdhanu/task-tracker-cli/modules/storage"
	"github.com/nadhirdhanu/task-tracker-cli/modules/task"
)

// app wires the stores for a single invocation. Nothing here outlives one
// command; every operation re-reads its collection from disk.
type app struct {
	cfg      *config.Config
	sessions *session.Manager
	identity *identity.Service
	tasks    *task.Service
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Flags override the config file
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if cmd.Flags().Changed("auth") {
		cfg.AuthEnabled, _ = cmd.Flags().GetBool("auth")
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	log.SetOutput(os.Stderr)

	store := storage.New(cfg.DataDir)
	return &app{
		cfg:      cfg,
		sessions: session.NewManager(store),
		identity: identity.NewService(identity.NewUserRepository(store), identity.NewPasswordHasher(identity.DefaultBcryptCost)),
		tasks:    task.NewService(task.NewRepository(store), cfg.AuthEnabled),
	}, nil
}

// actor resolves the current actor once per invocation and threads it into
// the task operations. In single-user mode it is empty; in auth mode a
// missing session is a user-facing error.
func (a *app) actor() (string, error) {
	if !a.cfg.AuthEnabled {
		return "", nil
	}
	name, ok, err := a.sessions.Current()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("not logged in: run 'tasktracker login <username> <password>' first")
	}
	return name, nil
}

// requireAuthMode guards the account commands, which are meaningless in
// single-user mode.
func (a *app) requireAuthMode() error {
	if !a.cfg.AuthEnabled {
		return errors.New("authentication is disabled: set auth_enabled in config.yaml or pass --auth")
	}
	return nil
}
