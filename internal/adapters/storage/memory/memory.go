// Package memory keeps the encoded todo snapshot in process memory.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/snapshot"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store holds the last saved payload. It goes through the same codec as the
// durable adapters, so it behaves identically apart from surviving restarts.
type Store struct {
	logger *slog.Logger

	mu   sync.Mutex
	data []byte
}

// New creates an empty Store.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{logger: logger}
}

// Load implements ports.SnapshotStore.
func (s *Store) Load(ctx context.Context) []todo.Todo {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()

	todos, report := snapshot.Decode(data)
	snapshot.LogReport(ctx, s.logger, "memory", report)
	return todos
}

// Save implements ports.SnapshotStore.
func (s *Store) Save(_ context.Context, todos []todo.Todo) error {
	data, err := snapshot.Encode(todos)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Bytes returns a copy of the stored payload.
func (s *Store) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}

// SetBytes replaces the stored payload, as an external writer would.
func (s *Store) SetBytes(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
}
