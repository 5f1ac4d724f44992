package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
)

// ChangeKind names the store operation that produced a Change.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeUpdated  ChangeKind = "updated"
	ChangeMoved    ChangeKind = "moved"
	ChangeDeleted  ChangeKind = "deleted"
	ChangeReloaded ChangeKind = "reloaded"
)

// Change describes one applied mutation. Todo is the entity after the change
// (for ChangeDeleted, the entity as it was before removal). Previous is nil
// for ChangeAdded and ChangeReloaded.
type Change struct {
	Kind     ChangeKind
	Todo     todo.Todo
	Previous *todo.Todo
}

// ChangeListener observes store mutations. Listeners are called
// synchronously, after the snapshot is saved and before the mutating call
// returns, so they must not call back into the store's mutating methods.
type ChangeListener interface {
	TodoChanged(ctx context.Context, change Change)
}

// OverdueEvent is emitted once when an in-progress todo passes its due date.
type OverdueEvent struct {
	TodoID     int64
	Title      string
	DueDate    time.Time
	DetectedAt time.Time
}

// OverdueSink receives overdue notifications from the due-date timer.
// NotifyOverdue is called while the timer holds its lock: implementations
// must not block or call back into the timer, and slow delivery belongs in a
// goroutine owned by the sink.
type OverdueSink interface {
	NotifyOverdue(ctx context.Context, event OverdueEvent)
}
