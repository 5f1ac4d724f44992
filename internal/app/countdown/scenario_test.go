package countdown_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/app/countdown"
	"github.com/jsamuelsen11/taskboard/internal/app/identity"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

type memSnapshots struct {
	mu    sync.Mutex
	todos []todo.Todo
}

func (m *memSnapshots) Load(context.Context) []todo.Todo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]todo.Todo(nil), m.todos...)
}

func (m *memSnapshots) Save(_ context.Context, todos []todo.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.todos = todos
	return nil
}

type chanSink chan ports.OverdueEvent

func (c chanSink) NotifyOverdue(_ context.Context, e ports.OverdueEvent) {
	c <- e
}

// TestBoardScenario walks a board from creation through an overdue
// notification and deletion with a store and timer wired together.
func TestBoardScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	snaps := &memSnapshots{}
	logger := slog.New(slog.DiscardHandler)

	store := app.NewTodoStore(snaps, identity.New(snaps), logger)
	sink := make(chanSink, 8)
	timer := countdown.New(store, sink, clock, time.Second, logger)
	t.Cleanup(timer.Stop)
	store.Subscribe(timer)

	a, err := store.Create(ctx, todo.Todo{Title: "A", Status: todo.StatusPending})
	require.NoError(t, err)
	b, err := store.Create(ctx, todo.Todo{Title: "B", Status: todo.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	due := clock.Now().Add(2 * time.Second)
	_, err = store.Update(ctx, a.ID, todo.Todo{Title: "A", Status: todo.StatusInProgress, DueDate: &due})
	require.NoError(t, err)
	require.Equal(t, 1, timer.Active())

	for range 2 {
		waitCtx, cancel := context.WithTimeout(ctx, time.Second)
		_ = clock.BlockUntilContext(waitCtx, 1)
		cancel()
		clock.Advance(time.Second)
	}

	select {
	case e := <-sink:
		assert.Equal(t, a.ID, e.TodoID)
	case <-time.After(time.Second):
		t.Fatal("expected an overdue notification for todo 1")
	}

	inProgress, err := store.Query(ctx, todo.Filter{Status: todo.StatusInProgress})
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, a.ID, inProgress[0].ID)

	require.NoError(t, store.Delete(ctx, a.ID))
	inProgress, err = store.Query(ctx, todo.Filter{Status: todo.StatusInProgress})
	require.NoError(t, err)
	assert.Empty(t, inProgress)

	_, tracked := timer.Remaining(a.ID)
	assert.False(t, tracked)
	clock.Advance(10 * time.Second)
	select {
	case e := <-sink:
		t.Fatalf("unexpected notification after delete: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDeleteCancelsRunningCountdown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC))
	snaps := &memSnapshots{}
	logger := slog.New(slog.DiscardHandler)
	store := app.NewTodoStore(snaps, identity.New(snaps), logger)
	sink := make(chanSink, 8)
	timer := countdown.New(store, sink, clock, time.Second, logger)
	t.Cleanup(timer.Stop)
	store.Subscribe(timer)

	due := clock.Now().Add(time.Second)
	created, err := store.Create(ctx, todo.Todo{Title: "A", Status: todo.StatusInProgress, DueDate: &due})
	require.NoError(t, err)
	require.Equal(t, 1, timer.Active())

	require.NoError(t, store.Delete(ctx, created.ID))
	require.NoError(t, store.Delete(ctx, created.ID))
	assert.Equal(t, 0, timer.Active())

	clock.Advance(5 * time.Second)
	select {
	case e := <-sink:
		t.Fatalf("unexpected notification after delete: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}
