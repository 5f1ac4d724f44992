// Package events turns store changes and overdue notifications into a stream
// of board events for live subscribers, and records them as metrics.
//
// Bus is wired as both a ports.ChangeListener and a ports.OverdueSink:
//
//	bus := events.NewBus(clock, logger)
//	store.Subscribe(bus)
//	timer := countdown.New(store, events.MultiSink{bus, recorder}, clock, interval, logger)
//
//	ch, cancel := bus.Subscribe(16)
//	defer cancel()
package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Kind is the event type name carried on the wire.
type Kind string

const (
	KindAdded    Kind = "todo.added"
	KindUpdated  Kind = "todo.updated"
	KindMoved    Kind = "todo.moved"
	KindDeleted  Kind = "todo.deleted"
	KindReloaded Kind = "todo.reloaded"
	KindOverdue  Kind = "todo.overdue"
)

// DefaultBuffer is the per-subscriber queue length used when Subscribe is
// given a non-positive size.
const DefaultBuffer = 32

var kindByChange = map[ports.ChangeKind]Kind{
	ports.ChangeAdded:    KindAdded,
	ports.ChangeUpdated:  KindUpdated,
	ports.ChangeMoved:    KindMoved,
	ports.ChangeDeleted:  KindDeleted,
	ports.ChangeReloaded: KindReloaded,
}

// Event is one board event. Exactly one of Todo and Overdue is set.
type Event struct {
	Seq      uint64
	Kind     Kind
	At       time.Time
	Todo     *todo.Todo
	Previous *todo.Todo
	Overdue  *ports.OverdueEvent
}

type subscriber struct {
	ch   chan Event
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

var (
	_ ports.ChangeListener = (*Bus)(nil)
	_ ports.OverdueSink    = (*Bus)(nil)
)

// Bus fans events out to subscribers without blocking the publisher. A
// subscriber whose queue is full misses the event; the miss is counted and
// logged at debug level. Every subscriber sees Seq strictly increasing.
type Bus struct {
	clock  clockwork.Clock
	logger *slog.Logger

	mu      sync.RWMutex
	subs    map[uint64]*subscriber
	nextSub uint64
	closed  bool

	// pubMu orders publishes so sequence numbers reach subscribers in order.
	// It is taken before mu.
	pubMu sync.Mutex
	seq   uint64

	dropped atomic.Uint64
}

// NewBus creates a Bus that stamps events with clock.
func NewBus(clock clockwork.Clock, logger *slog.Logger) *Bus {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bus{
		clock:  clock,
		logger: logger,
		subs:   make(map[uint64]*subscriber),
	}
}

// Subscribe registers a subscriber with a queue of the given size. The
// returned cancel func unregisters it and closes the channel; it is safe to
// call more than once. Subscribing to a closed Bus yields a closed channel.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	sub := &subscriber{ch: make(chan Event, buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.close()
		return sub.ch, func() {}
	}
	id := b.nextSub
	b.nextSub++
	b.subs[id] = sub
	b.mu.Unlock()

	return sub.ch, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		sub.close()
	}
}

// TodoChanged publishes a store change.
func (b *Bus) TodoChanged(ctx context.Context, change ports.Change) {
	kind, ok := kindByChange[change.Kind]
	if !ok {
		return
	}
	t := change.Todo.Clone()
	ev := Event{Kind: kind, Todo: &t}
	if change.Previous != nil {
		prev := change.Previous.Clone()
		ev.Previous = &prev
	}
	b.publish(ctx, ev)
}

// NotifyOverdue publishes an overdue notification.
func (b *Bus) NotifyOverdue(ctx context.Context, event ports.OverdueEvent) {
	b.publish(ctx, Event{Kind: KindOverdue, Overdue: &event})
}

// Subscribers returns the current subscriber count.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped returns how many per-subscriber deliveries were skipped because a
// queue was full.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}

// Close unregisters and closes every subscriber. Later publishes are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		sub.close()
		delete(b.subs, id)
	}
}

func (b *Bus) publish(ctx context.Context, ev Event) {
	b.pubMu.Lock()
	defer b.pubMu.Unlock()
	b.seq++
	ev.Seq = b.seq
	ev.At = b.clock.Now()

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, sub := range b.subs {
		select {
		case sub.ch <- ev:
		default:
			b.dropped.Add(1)
			b.logger.DebugContext(ctx, "event dropped for slow subscriber",
				slog.String("kind", string(ev.Kind)),
				slog.Uint64("seq", ev.Seq),
			)
		}
	}
}
