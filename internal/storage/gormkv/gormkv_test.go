package gormkv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/ideaboard/internal/config"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.Load()
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "test.db")

	s, err := OpenSQLite(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put("ideaboard.ideas", "[]"))
	require.NoError(t, s.Put("ideaboard.ideas", `[{"id":"x"}]`))

	value, ok, err := s.Get("ideaboard.ideas")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, value)

	require.NoError(t, s.Delete("ideaboard.ideas"))
	require.NoError(t, s.Delete("ideaboard.ideas"))

	_, ok, err = s.Get("ideaboard.ideas")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	cfg := config.Load()
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "test.db")

	s, err := OpenSQLite(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", "v"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(cfg)
	require.NoError(t, err)
	defer s.Close()

	value, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}
