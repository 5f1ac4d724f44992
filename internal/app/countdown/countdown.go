// Package countdown drives per-todo due-date countdowns and raises a single
// overdue notification when an in-progress todo passes its deadline.
//
// Each tracked todo owns its own ticker goroutine and cancellation channel.
// The Timer is a ports.ChangeListener: the TodoStore calls it synchronously
// inside every mutation, so a todo that is deleted, moved out of progress, or
// loses its due date has its countdown cancelled before the mutating call
// returns. Ticks re-read the store and carry a generation number; a tick
// whose generation is no longer current is discarded.
package countdown

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// DefaultInterval is the countdown tick granularity.
const DefaultInterval = time.Second

var (
	_ ports.ChangeListener = (*Timer)(nil)
	_ ports.Countdowns     = (*Timer)(nil)
)

// entry is the countdown state for one todo. A running entry owns a ticker
// and a stop channel; an overdue entry has neither and reports zero.
type entry struct {
	gen       uint64
	due       time.Time
	remaining time.Duration
	overdue   bool
	ticker    clockwork.Ticker
	stop      chan struct{}
}

func (e *entry) cancel() {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
	if e.stop != nil {
		close(e.stop)
		e.stop = nil
	}
}

// Timer tracks countdowns for every in-progress todo with a due date.
type Timer struct {
	store    ports.TodoReader
	sink     ports.OverdueSink
	clock    clockwork.Clock
	interval time.Duration
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	entries  map[int64]*entry
	notified map[int64]time.Time
	gen      uint64
	stopped  bool
}

// New creates a Timer that reads todos from store and reports overdue todos
// to sink. A zero interval uses DefaultInterval; a nil clock uses the real
// clock.
func New(store ports.TodoReader, sink ports.OverdueSink, clock clockwork.Clock, interval time.Duration, logger *slog.Logger) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Timer{
		store:    store,
		sink:     sink,
		clock:    clock,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		entries:  make(map[int64]*entry),
		notified: make(map[int64]time.Time),
	}
}

// TodoChanged implements ports.ChangeListener.
func (t *Timer) TodoChanged(ctx context.Context, change ports.Change) {
	if change.Kind == ports.ChangeDeleted {
		t.Forget(change.Todo.ID)
		return
	}
	t.Sync(ctx, change.Todo)
}

// Sync starts, keeps, or cancels the countdown for td according to its
// current state. A countdown already running for the same deadline is left
// untouched.
func (t *Timer) Sync(ctx context.Context, td todo.Todo) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	if !td.HasDeadline() {
		t.cancelLocked(td.ID)
		return
	}

	due := *td.DueDate
	if e, ok := t.entries[td.ID]; ok && e.due.Equal(due) {
		return
	}
	t.cancelLocked(td.ID)
	if last, ok := t.notified[td.ID]; ok && !last.Equal(due) {
		delete(t.notified, td.ID)
	}

	t.gen++
	e := &entry{gen: t.gen, due: due}
	t.entries[td.ID] = e

	remaining := due.Sub(t.clock.Now())
	if remaining <= 0 {
		t.expireLocked(ctx, td, e)
		return
	}

	e.remaining = remaining
	e.ticker = t.clock.NewTicker(t.interval)
	e.stop = make(chan struct{})
	t.wg.Add(1)
	go t.run(td.ID, e.gen, e.ticker, e.stop)

	t.logger.DebugContext(ctx, "countdown started",
		slog.Int64("id", td.ID),
		slog.Time("due", due),
	)
}

// Cancel stops the countdown for id. Cancelling an id with no countdown is
// harmless.
func (t *Timer) Cancel(id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked(id)
}

// Forget cancels the countdown for id and drops its overdue record, so a
// todo that is later re-added with the same id is treated as new.
func (t *Timer) Forget(id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked(id)
	delete(t.notified, id)
}

// Remaining implements ports.Countdowns.
func (t *Timer) Remaining(id int64) (ports.CountdownState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok {
		return ports.CountdownState{}, false
	}
	return ports.CountdownState{Remaining: e.remaining, Overdue: e.overdue}, true
}

// Active returns the number of countdowns with a live ticker.
func (t *Timer) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, e := range t.entries {
		if e.ticker != nil {
			n++
		}
	}
	return n
}

// Stop cancels every countdown and waits for their goroutines to exit.
// Later changes are ignored. Stop is safe to call more than once.
func (t *Timer) Stop() {
	t.mu.Lock()
	t.stopped = true
	for id := range t.entries {
		t.cancelLocked(id)
	}
	t.mu.Unlock()

	t.cancel()
	t.wg.Wait()
}

func (t *Timer) cancelLocked(id int64) {
	e, ok := t.entries[id]
	if !ok {
		return
	}
	e.cancel()
	delete(t.entries, id)
}

func (t *Timer) run(id int64, gen uint64, ticker clockwork.Ticker, stop <-chan struct{}) {
	defer t.wg.Done()

	for {
		select {
		case <-stop:
			return
		case <-t.ctx.Done():
			return
		case <-ticker.Chan():
			if !t.tick(id, gen) {
				return
			}
		}
	}
}

// tick recomputes the remaining time for id and reports whether the
// countdown should keep running. The store is read before the timer lock is
// taken; the generation check under the lock discards ticks that raced with
// a cancellation.
func (t *Timer) tick(id int64, gen uint64) bool {
	current, err := t.store.Get(t.ctx, id)

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok || e.gen != gen {
		return false
	}
	if err != nil || !current.HasDeadline() || !current.DueDate.Equal(e.due) {
		// The store moved on; the pending change notification will cancel
		// or restart this countdown.
		return true
	}

	remaining := e.due.Sub(t.clock.Now())
	if remaining > 0 {
		e.remaining = remaining
		return true
	}

	t.expireLocked(t.ctx, current, e)
	return false
}

// expireLocked marks e overdue and emits the notification unless one was
// already sent for this deadline.
func (t *Timer) expireLocked(ctx context.Context, td todo.Todo, e *entry) {
	e.cancel()
	e.remaining = 0
	e.overdue = true

	if last, ok := t.notified[td.ID]; ok && last.Equal(e.due) {
		return
	}
	t.notified[td.ID] = e.due

	t.logger.InfoContext(ctx, "todo overdue",
		slog.Int64("id", td.ID),
		slog.Time("due", e.due),
	)
	if t.sink != nil {
		t.sink.NotifyOverdue(ctx, ports.OverdueEvent{
			TodoID:     td.ID,
			Title:      td.Title,
			DueDate:    e.due,
			DetectedAt: t.clock.Now(),
		})
	}
}
