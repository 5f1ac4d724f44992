// Package file stores the todo snapshot as a single JSON file.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/snapshot"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

var (
	_ ports.SnapshotStore = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store reads and writes the snapshot at a fixed path. Saves go to a
// temporary file in the same directory which is then renamed over the
// target, so a crash mid-write leaves the previous snapshot intact.
type Store struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// New creates a Store for path. The file need not exist.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, logger: logger}
}

// Load implements ports.SnapshotStore.
func (s *Store) Load(ctx context.Context) []todo.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.WarnContext(ctx, "failed to read snapshot file",
				slog.String("path", s.path),
				slog.Any("error", err),
			)
		}
		return []todo.Todo{}
	}

	todos, report := snapshot.Decode(data)
	snapshot.LogReport(ctx, s.logger, s.path, report)
	return todos
}

// Save implements ports.SnapshotStore.
func (s *Store) Save(_ context.Context, todos []todo.Todo) error {
	data, err := snapshot.Encode(todos)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "snapshot-file" }

// HealthCheck reports whether the snapshot directory is usable.
func (s *Store) HealthCheck(_ context.Context) error {
	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("snapshot dir %s is not a directory", filepath.Dir(s.path))
	}
	return nil
}
