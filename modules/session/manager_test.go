package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadhirdhanu/task-tracker-cli/modules/storage"
)

func TestCurrent_AbsentIsNormal(t *testing.T) {
	m := NewManager(storage.New(t.TempDir()))

	name, ok, err := m.Current()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestStartCurrent(t *testing.T) {
	m := NewManager(storage.New(t.TempDir()))

	require.NoError(t, m.Start("alice"))

	name, ok, err := m.Current()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", name)
}

// A new login overwrites the previous session, it does not merge.
func TestStart_OverwritesExistingSession(t *testing.T) {
	m := NewManager(storage.New(t.TempDir()))

	require.NoError(t, m.Start("alice"))
	require.NoError(t, m.Start("bob"))

	name, ok, err := m.Current()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bob", name)
}

func TestEnd(t *testing.T) {
	m := NewManager(storage.New(t.TempDir()))

	require.NoError(t, m.Start("alice"))
	require.NoError(t, m.End())

	_, ok, err := m.Current()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnd_AbsentIsNoop(t *testing.T) {
	m := NewManager(storage.New(t.TempDir()))

	assert.NoError(t, m.End())
	assert.NoError(t, m.End())
}
