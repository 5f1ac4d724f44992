package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
)

// TodoReader is the read-only query surface of the todo store.
type TodoReader interface {
	// Get returns a copy of the todo with the given id.
	// Returns a *domain.NotFoundError if the id is absent.
	Get(ctx context.Context, id int64) (todo.Todo, error)

	// Query returns copies of all todos matching filter, in insertion order.
	Query(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)
}

// TodoStore defines the service port for the authoritative todo collection.
// Implemented by the application layer; called by inbound adapters and the
// drag coordinator. Every successful mutation is persisted before returning.
type TodoStore interface {
	TodoReader

	// Create allocates an id for draft and adds it.
	// Returns domain.ErrValidation if the draft fails validation.
	Create(ctx context.Context, draft todo.Todo) (todo.Todo, error)

	// Add inserts a todo that already carries an id.
	// Returns a *domain.DuplicateIDError if the id is already present.
	Add(ctx context.Context, t todo.Todo) (todo.Todo, error)

	// Update replaces every field of the todo with patch, preserving the id.
	// Returns a *domain.NotFoundError if the id is absent.
	Update(ctx context.Context, id int64, patch todo.Todo) (todo.Todo, error)

	// Move changes only the status. Moving to the current status is a
	// successful no-op that does not touch persistence.
	// Returns a *domain.NotFoundError if the id is absent.
	Move(ctx context.Context, id int64, target todo.Status) (todo.Todo, error)

	// Delete removes the todo. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error
}

// IDAllocator produces ids that are unique across the persisted collection.
type IDAllocator interface {
	Next(ctx context.Context) (int64, error)
}

// CountdownState is the timer's view of one todo's deadline.
type CountdownState struct {
	Remaining time.Duration
	Overdue   bool
}

// Countdowns exposes live countdowns to the view layer.
type Countdowns interface {
	// Remaining reports the countdown for id. ok is false when no deadline
	// is tracked for the id.
	Remaining(id int64) (state CountdownState, ok bool)
}

// DragState is a drag session's position in the drag/drop protocol.
type DragState string

const (
	DragIdle     DragState = "idle"
	DragDragging DragState = "dragging"
	DragHovering DragState = "hovering"
)

// DragPayload is captured once at drag start and never changes.
type DragPayload struct {
	TodoID       int64
	OriginStatus todo.Status
}

// DragSession is a snapshot of one in-flight drag gesture.
type DragSession struct {
	ID      uuid.UUID
	State   DragState
	Payload DragPayload
	Target  todo.Status
}

// DropResult reports what a drop did. Moved is false for a same-column drop
// or a drop outside every column.
type DropResult struct {
	Moved bool
	Todo  *todo.Todo
}

// DragCoordinator translates drag gestures into store moves.
// Unknown session ids return domain.ErrNotFound.
type DragCoordinator interface {
	Begin(ctx context.Context, todoID int64) (DragSession, error)
	Hover(ctx context.Context, sessionID uuid.UUID, target todo.Status) (DragSession, error)
	Leave(ctx context.Context, sessionID uuid.UUID) (DragSession, error)
	Drop(ctx context.Context, sessionID uuid.UUID) (DropResult, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) error
}
