package file

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "todos.json")
	return New(path, slog.New(slog.DiscardHandler)), path
}

func TestStore_LoadMissingFile(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)

	got := s.Load(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_SaveThenLoad(t *testing.T) {
	t.Parallel()
	s, path := newStore(t)
	due := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	todos := []todo.Todo{
		{ID: 1, Title: "a", Status: todo.StatusPending},
		{ID: 2, Title: "b", Status: todo.StatusInProgress, DueDate: &due},
	}

	require.NoError(t, s.Save(context.Background(), todos))
	got := s.Load(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[1].ID)
	assert.True(t, got[1].DueDate.Equal(due))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStore_SaveLoadIsFixedPoint(t *testing.T) {
	t.Parallel()
	s, path := newStore(t)
	require.NoError(t, s.Save(context.Background(), []todo.Todo{
		{ID: 3, Title: "c", Description: "x", Status: todo.StatusCompleted},
	}))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), s.Load(context.Background())))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	t.Parallel()
	s, path := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	assert.Empty(t, s.Load(context.Background()))
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	s, path := newStore(t)

	require.Error(t, s.HealthCheck(context.Background()), "dir does not exist yet")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, s.HealthCheck(context.Background()))
	assert.Equal(t, "snapshot-file", s.Name())
}
