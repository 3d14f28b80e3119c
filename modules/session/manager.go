package session

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/nadhirdhanu/task-tracker-cli/modules/storage"
)

const sessionFile = "session.json"

// record is the persisted session document. Absence of the file means no
// one is logged in.
type record struct {
	CurrentUsername string `json:"currentUsername"`
}

// Manager owns the persisted current-user marker. A new login overwrites
// any previous session rather than merging with it.
type Manager struct {
	store *storage.Store
}

// NewManager creates a new session Manager.
func NewManager(store *storage.Store) *Manager {
	return &Manager{store: store}
}

// Start records username as the current actor, replacing any existing
// session.
func (m *Manager) Start(username string) error {
	if err := m.store.Save(sessionFile, record{CurrentUsername: username}); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	log.WithFields(log.Fields{"user": username}).Debug("session started")
	return nil
}

// End removes the session marker. Ending when no session exists is a no-op.
func (m *Manager) End() error {
	if err := m.store.Remove(sessionFile); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	log.Debug("session ended")
	return nil
}

// Current returns the logged-in username. The boolean is false when no
// session exists, which is a normal state rather than an error.
func (m *Manager) Current() (string, bool, error) {
	var rec record
	if err := m.store.Load(sessionFile, &rec); err != nil {
		return "", false, fmt.Errorf("failed to read session: %w", err)
	}
	if rec.CurrentUsername == "" {
		return "", false, nil
	}
	return rec.CurrentUsername, true, nil
}
