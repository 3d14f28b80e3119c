package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoad_MissingFileIsBootstrap(t *testing.T) {
	store := New(t.TempDir())

	var docs []doc
	err := store.Load("missing.json", &docs)
	require.NoError(t, err)
	assert.Nil(t, docs)
}

func TestLoad_MissingDirectoryIsBootstrap(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))

	var docs []doc
	err := store.Load("missing.json", &docs)
	require.NoError(t, err)
	assert.Nil(t, docs)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "data"))

	in := []doc{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, store.Save("docs.json", in))

	var out []doc
	require.NoError(t, store.Load("docs.json", &out))
	assert.Equal(t, in, out)
}

// Saving what was just loaded must not change the persisted representation.
func TestSave_Idempotent(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Save("docs.json", []doc{{Name: "a", Count: 1}}))
	first, err := os.ReadFile(filepath.Join(store.Dir(), "docs.json"))
	require.NoError(t, err)

	var loaded []doc
	require.NoError(t, store.Load("docs.json", &loaded))
	require.NoError(t, store.Save("docs.json", loaded))

	second, err := os.ReadFile(filepath.Join(store.Dir(), "docs.json"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSave_ReplacesWholeDocument(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Save("docs.json", []doc{{Name: "a"}, {Name: "b"}}))
	require.NoError(t, store.Save("docs.json", []doc{{Name: "c"}}))

	var out []doc
	require.NoError(t, store.Load("docs.json", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].Name)
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Save("docs.json", []doc{}))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "docs.json", entries[0].Name())
}

func TestLoad_CorruptFileFails(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "docs.json"), []byte("{not json"), 0644))

	var out []doc
	err := store.Load("docs.json", &out)
	assert.Error(t, err)
}

func TestRemove_MissingFileIsNoop(t *testing.T) {
	store := New(t.TempDir())
	assert.NoError(t, store.Remove("missing.json"))
}
