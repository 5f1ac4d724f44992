package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
)

// SnapshotStore persists the whole todo collection as one opaque snapshot.
// Implemented by the storage adapters; called by the TodoStore and the
// identity allocator.
type SnapshotStore interface {
	// Load returns the stored collection. It never fails: a missing or
	// unparseable snapshot is reported as an empty collection, and
	// structurally invalid records are skipped.
	Load(ctx context.Context) []todo.Todo

	// Save writes a full replacement snapshot of todos. It returns only
	// after the write is durable so that a following Load observes it.
	Save(ctx context.Context, todos []todo.Todo) error
}
