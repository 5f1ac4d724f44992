package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Compile-time check that TodoStore implements ports.TodoStore.
var _ ports.TodoStore = (*TodoStore)(nil)

// StoreOption configures a TodoStore.
type StoreOption func(*storeOptions)

type storeOptions struct {
	clearDueOnLeave bool
}

// WithClearDueOnLeave controls whether Move drops a todo's due date when it
// leaves the in-progress stage. Enabled by default.
func WithClearDueOnLeave(clear bool) StoreOption {
	return func(o *storeOptions) {
		o.clearDueOnLeave = clear
	}
}

// TodoStore is the sole authority over the todo collection. Every operation
// runs under one mutex, so calls are applied one at a time in the order they
// acquire it. A mutation is saved through the SnapshotStore before memory is
// replaced; when Save fails, memory is left untouched.
type TodoStore struct {
	snapshots ports.SnapshotStore
	ids       ports.IDAllocator
	logger    *slog.Logger
	opts      storeOptions

	mu        sync.Mutex
	todos     []todo.Todo
	index     map[int64]int
	listeners []ports.ChangeListener
}

// NewTodoStore creates an empty TodoStore. Call Reload to populate it from
// the snapshot store.
func NewTodoStore(snapshots ports.SnapshotStore, ids ports.IDAllocator, logger *slog.Logger, opts ...StoreOption) *TodoStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	o := storeOptions{clearDueOnLeave: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &TodoStore{
		snapshots: snapshots,
		ids:       ids,
		logger:    logger,
		opts:      o,
		index:     make(map[int64]int),
	}
}

// Subscribe registers a listener that is called synchronously after every
// applied mutation.
func (s *TodoStore) Subscribe(listener ports.ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Reload replaces the in-memory collection with the persisted snapshot.
// Listeners receive ChangeDeleted for todos that disappeared and
// ChangeReloaded for every loaded todo.
func (s *TodoStore) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := s.snapshots.Load(ctx)
	next := make([]todo.Todo, 0, len(loaded))
	index := make(map[int64]int, len(loaded))
	for _, t := range loaded {
		if _, dup := index[t.ID]; dup {
			continue
		}
		index[t.ID] = len(next)
		next = append(next, t.Clone())
	}

	prev, prevIndex := s.todos, s.index
	s.todos, s.index = next, index

	s.logger.InfoContext(ctx, "todo store reloaded", slog.Int("count", len(next)))

	for _, old := range prev {
		if _, ok := index[old.ID]; !ok {
			s.notify(ctx, ports.Change{Kind: ports.ChangeDeleted, Todo: old.Clone()})
		}
	}
	for _, t := range next {
		change := ports.Change{Kind: ports.ChangeReloaded, Todo: t.Clone()}
		if i, ok := prevIndex[t.ID]; ok {
			old := prev[i].Clone()
			change.Previous = &old
		}
		s.notify(ctx, change)
	}
}

// Create allocates an id for draft and inserts it.
func (s *TodoStore) Create(ctx context.Context, draft todo.Todo) (todo.Todo, error) {
	if err := draft.Validate(); err != nil {
		return todo.Todo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to allocate todo id",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return todo.Todo{}, fmt.Errorf("allocating id: %w", err)
	}
	draft.ID = id

	return s.insertLocked(ctx, draft, "Create")
}

// Add inserts t, which must already carry its id.
func (s *TodoStore) Add(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	if err := t.Validate(); err != nil {
		return todo.Todo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[t.ID]; exists {
		return todo.Todo{}, &domain.DuplicateIDError{ID: t.ID}
	}
	return s.insertLocked(ctx, t, "Add")
}

// Update replaces every field of the todo identified by id with patch.
// The id is preserved; an unchanged patch does not write the snapshot.
func (s *TodoStore) Update(ctx context.Context, id int64, patch todo.Todo) (todo.Todo, error) {
	patch.ID = id
	if err := patch.Validate(); err != nil {
		return todo.Todo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return todo.Todo{}, &domain.NotFoundError{ID: id}
	}
	prev := s.todos[i].Clone()
	if prev.Equal(&patch) {
		return prev, nil
	}

	return s.replaceLocked(ctx, i, patch.Clone(), ports.ChangeUpdated, "Update")
}

// Move changes only the status of the todo identified by id. Moving a todo
// to the stage it is already in succeeds without touching persistence.
func (s *TodoStore) Move(ctx context.Context, id int64, target todo.Status) (todo.Todo, error) {
	if !target.IsValid() {
		return todo.Todo{}, &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", target),
		}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return todo.Todo{}, &domain.NotFoundError{ID: id}
	}
	moved := s.todos[i].Clone()
	if moved.Status == target {
		return moved, nil
	}

	if s.opts.clearDueOnLeave && moved.Status == todo.StatusInProgress {
		moved.DueDate = nil
	}
	moved.Status = target

	return s.replaceLocked(ctx, i, moved, ports.ChangeMoved, "Move")
}

// Delete removes the todo identified by id. Deleting an absent id is a
// successful no-op. Listeners, including the due-date timer, have observed
// the removal by the time Delete returns.
func (s *TodoStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil
	}
	removed := s.todos[i].Clone()

	next := slices.Delete(slices.Clone(s.todos), i, i+1)
	if err := s.commitLocked(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "todo deleted", slog.Int64("id", id))
	s.notify(ctx, ports.Change{Kind: ports.ChangeDeleted, Todo: removed})
	return nil
}

// Get returns a copy of the todo identified by id.
func (s *TodoStore) Get(_ context.Context, id int64) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return todo.Todo{}, &domain.NotFoundError{ID: id}
	}
	return s.todos[i].Clone(), nil
}

// Query returns copies of the todos matching filter in insertion order.
func (s *TodoStore) Query(_ context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]todo.Todo, 0, len(s.todos))
	for i := range s.todos {
		if filter.Matches(&s.todos[i]) {
			out = append(out, s.todos[i].Clone())
		}
	}
	return out, nil
}

// nextID asks the allocator for an id not present in memory. Allocated ids
// strictly increase, so the loop ends once it passes every live id.
func (s *TodoStore) nextID(ctx context.Context) (int64, error) {
	for {
		id, err := s.ids.Next(ctx)
		if err != nil {
			return 0, err
		}
		if _, taken := s.index[id]; !taken {
			return id, nil
		}
	}
}

func (s *TodoStore) insertLocked(ctx context.Context, t todo.Todo, op string) (todo.Todo, error) {
	added := t.Clone()
	next := append(slices.Clone(s.todos), added)
	if err := s.commitLocked(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to add todo",
			slog.String("operation", op),
			slog.Int64("id", t.ID),
			slog.Any("error", err),
		)
		return todo.Todo{}, err
	}

	s.logger.InfoContext(ctx, "todo added",
		slog.Int64("id", added.ID),
		slog.String("status", added.Status.String()),
	)
	s.notify(ctx, ports.Change{Kind: ports.ChangeAdded, Todo: added.Clone()})
	return added.Clone(), nil
}

func (s *TodoStore) replaceLocked(ctx context.Context, i int, t todo.Todo, kind ports.ChangeKind, op string) (todo.Todo, error) {
	prev := s.todos[i].Clone()
	next := slices.Clone(s.todos)
	next[i] = t
	if err := s.commitLocked(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to save todo",
			slog.String("operation", op),
			slog.Int64("id", t.ID),
			slog.Any("error", err),
		)
		return todo.Todo{}, err
	}

	s.logger.InfoContext(ctx, "todo saved",
		slog.String("operation", op),
		slog.Int64("id", t.ID),
		slog.String("from", prev.Status.String()),
		slog.String("to", t.Status.String()),
	)
	s.notify(ctx, ports.Change{Kind: kind, Todo: t.Clone(), Previous: &prev})
	return t.Clone(), nil
}

// commitLocked saves next and, on success, makes it the live collection.
func (s *TodoStore) commitLocked(ctx context.Context, next []todo.Todo) error {
	snapshot := make([]todo.Todo, len(next))
	for i := range next {
		snapshot[i] = next[i].Clone()
	}
	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	index := make(map[int64]int, len(next))
	for i := range next {
		index[next[i].ID] = i
	}
	s.todos, s.index = next, index
	return nil
}

func (s *TodoStore) notify(ctx context.Context, change ports.Change) {
	for _, l := range s.listeners {
		l.TodoChanged(ctx, change)
	}
}
