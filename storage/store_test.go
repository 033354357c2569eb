package storage

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "arcade.json"))
	require.NoError(t, err)

	sqliteStore, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestStoreGetSet(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get(BestScoreKey)
			require.NoError(t, err)
			assert.False(t, ok, "missing key must report ok=false")

			require.NoError(t, store.Set(BestScoreKey, "40"))
			v, ok, err := store.Get(BestScoreKey)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "40", v)

			require.NoError(t, store.Set(BestScoreKey, "90"))
			v, _, _ = store.Get(BestScoreKey)
			assert.Equal(t, "90", v)
		})
	}
}

func TestFileStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "arcade.json")

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(BestScoreKey, "120"))
	require.NoError(t, fs.Set(AchievementsKey, `{"first-visit":{}}`))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(BestScoreKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "120", v)
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestSQLiteStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(BestScoreKey, "70"))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(BestScoreKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "70", v)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, kind := range []string{KindMemory, KindJSON, KindSQLite} {
		s, err := Open(kind, dir)
		require.NoError(t, err, kind)
		require.NoError(t, s.Close())
	}

	_, err := Open("redis", dir)
	assert.Error(t, err)
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("unavailable") }
func (failingStore) Set(string, string) error         { return errors.New("quota exceeded") }
func (failingStore) Close() error                     { return nil }

func TestPersistSwallowsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	assert.NotPanics(t, func() {
		Persist(logger, failingStore{}, BestScoreKey, "10")
		Persist(logger, nil, BestScoreKey, "10")
	})
	assert.Contains(t, buf.String(), "quota exceeded")

	v, ok := Load(logger, failingStore{}, BestScoreKey)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Contains(t, buf.String(), "unavailable")
}
