package dragdrop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// DefaultTTL bounds how long an abandoned session is kept.
const DefaultTTL = 5 * time.Minute

// Compile-time check that Coordinator implements ports.DragCoordinator.
var _ ports.DragCoordinator = (*Coordinator)(nil)

type trackedSession struct {
	Session
	touched time.Time
}

// Coordinator holds concurrent drag sessions keyed by a random session id
// and forwards completed drops to the TodoStore. Finished sessions are
// removed; sessions idle for longer than the TTL are discarded on the next
// call.
type Coordinator struct {
	store  ports.TodoStore
	clock  clockwork.Clock
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*trackedSession
}

// NewCoordinator creates a Coordinator. A zero ttl uses DefaultTTL; a nil
// clock uses the real clock.
func NewCoordinator(store ports.TodoStore, clock clockwork.Clock, ttl time.Duration, logger *slog.Logger) *Coordinator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Coordinator{
		store:    store,
		clock:    clock,
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[uuid.UUID]*trackedSession),
	}
}

// Begin captures the todo's id and current status and opens a session.
func (c *Coordinator) Begin(ctx context.Context, todoID int64) (ports.DragSession, error) {
	td, err := c.store.Get(ctx, todoID)
	if err != nil {
		return ports.DragSession{}, err
	}

	ts := &trackedSession{}
	if err := ts.Begin(ports.DragPayload{TodoID: td.ID, OriginStatus: td.Status}); err != nil {
		return ports.DragSession{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.sweepLocked(now)
	ts.touched = now
	id := uuid.New()
	c.sessions[id] = ts

	c.logger.DebugContext(ctx, "drag started",
		slog.String("session_id", id.String()),
		slog.Int64("todo_id", td.ID),
		slog.String("origin", td.Status.String()),
	)
	return snapshot(id, ts), nil
}

// Hover moves the session over target.
func (c *Coordinator) Hover(_ context.Context, sessionID uuid.UUID, target todo.Status) (ports.DragSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts, err := c.lookupLocked(sessionID)
	if err != nil {
		return ports.DragSession{}, err
	}
	if err := ts.Hover(target); err != nil {
		return ports.DragSession{}, err
	}
	return snapshot(sessionID, ts), nil
}

// Leave moves the session off every column.
func (c *Coordinator) Leave(_ context.Context, sessionID uuid.UUID) (ports.DragSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts, err := c.lookupLocked(sessionID)
	if err != nil {
		return ports.DragSession{}, err
	}
	if err := ts.Leave(); err != nil {
		return ports.DragSession{}, err
	}
	return snapshot(sessionID, ts), nil
}

// Drop ends the session. When the hovered column differs from the status
// captured at Begin, the todo is moved there; the store applies the move
// even if the todo's status changed during the drag.
func (c *Coordinator) Drop(ctx context.Context, sessionID uuid.UUID) (ports.DropResult, error) {
	c.mu.Lock()
	ts, err := c.lookupLocked(sessionID)
	if err != nil {
		c.mu.Unlock()
		return ports.DropResult{}, err
	}
	payload, target, move, err := ts.Drop()
	delete(c.sessions, sessionID)
	c.mu.Unlock()

	if err != nil {
		return ports.DropResult{}, err
	}
	if !move {
		c.logger.DebugContext(ctx, "drop without move",
			slog.String("session_id", sessionID.String()),
			slog.Int64("todo_id", payload.TodoID),
		)
		return ports.DropResult{}, nil
	}

	moved, err := c.store.Move(ctx, payload.TodoID, target)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to move dropped todo",
			slog.String("operation", "Drop"),
			slog.Int64("todo_id", payload.TodoID),
			slog.String("target", target.String()),
			slog.Any("error", err),
		)
		return ports.DropResult{}, err
	}
	return ports.DropResult{Moved: true, Todo: &moved}, nil
}

// Cancel discards the session without touching the store.
func (c *Coordinator) Cancel(_ context.Context, sessionID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts, err := c.lookupLocked(sessionID)
	if err != nil {
		return err
	}
	ts.Cancel()
	delete(c.sessions, sessionID)
	return nil
}

// Len returns the number of open sessions.
func (c *Coordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked(c.clock.Now())
	return len(c.sessions)
}

func (c *Coordinator) lookupLocked(id uuid.UUID) (*trackedSession, error) {
	now := c.clock.Now()
	c.sweepLocked(now)
	ts, ok := c.sessions[id]
	if !ok {
		return nil, fmt.Errorf("drag session %s: %w", id, domain.ErrNotFound)
	}
	ts.touched = now
	return ts, nil
}

func (c *Coordinator) sweepLocked(now time.Time) {
	for id, ts := range c.sessions {
		if now.Sub(ts.touched) > c.ttl {
			delete(c.sessions, id)
		}
	}
}

func snapshot(id uuid.UUID, ts *trackedSession) ports.DragSession {
	return ports.DragSession{
		ID:      id,
		State:   ts.State(),
		Payload: ts.Payload(),
		Target:  ts.Target(),
	}
}
