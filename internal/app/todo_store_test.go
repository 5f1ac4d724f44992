package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/taskboard/internal/app/identity"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
	"github.com/jsamuelsen11/taskboard/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func timePtr(t time.Time) *time.Time { return &t }

// fakeSnapshots is an in-memory SnapshotStore that counts saves and can be
// told to fail.
type fakeSnapshots struct {
	mu      sync.Mutex
	stored  []todo.Todo
	saves   int
	saveErr error
}

func (f *fakeSnapshots) Load(context.Context) []todo.Todo {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]todo.Todo, len(f.stored))
	for i := range f.stored {
		out[i] = f.stored[i].Clone()
	}
	return out
}

func (f *fakeSnapshots) Save(_ context.Context, todos []todo.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.stored = todos
	return nil
}

func (f *fakeSnapshots) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

type recordingListener struct {
	mu      sync.Mutex
	changes []ports.Change
}

func (r *recordingListener) TodoChanged(_ context.Context, c ports.Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *recordingListener) kinds() []ports.ChangeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.ChangeKind, 0, len(r.changes))
	for _, c := range r.changes {
		out = append(out, c.Kind)
	}
	return out
}

func newTestStore(t *testing.T, opts ...StoreOption) (*TodoStore, *fakeSnapshots) {
	t.Helper()
	snaps := &fakeSnapshots{}
	return NewTodoStore(snaps, identity.New(snaps), discardLogger(), opts...), snaps
}

func mustCreate(t *testing.T, s *TodoStore, title string, status todo.Status) todo.Todo {
	t.Helper()
	created, err := s.Create(context.Background(), todo.Todo{Title: title, Status: status})
	require.NoError(t, err)
	return created
}

func ids(todos []todo.Todo) []int64 {
	out := make([]int64, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

// --- NewTodoStore ---

func TestNewTodoStore_NilLogger(t *testing.T) {
	t.Parallel()
	snaps := &fakeSnapshots{}

	s := NewTodoStore(snaps, identity.New(snaps), nil)
	if s.logger == nil {
		t.Fatal("NewTodoStore(nil logger) should create a no-op logger, got nil")
	}
}

// --- Create / Add ---

func TestTodoStore_Create(t *testing.T) {
	t.Parallel()

	t.Run("assigns increasing ids", func(t *testing.T) {
		t.Parallel()
		s, snaps := newTestStore(t)

		a := mustCreate(t, s, "A", todo.StatusPending)
		b := mustCreate(t, s, "B", todo.StatusPending)

		assert.Equal(t, int64(1), a.ID)
		assert.Equal(t, int64(2), b.ID)
		assert.Equal(t, 2, snaps.saveCount())
		assert.Equal(t, []int64{1, 2}, ids(snaps.Load(context.Background())))
	})

	t.Run("rejects invalid draft without saving", func(t *testing.T) {
		t.Parallel()
		s, snaps := newTestStore(t)

		_, err := s.Create(context.Background(), todo.Todo{Title: " ", Status: todo.StatusPending})

		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, 0, snaps.saveCount())
	})

	t.Run("skips allocated ids already held in memory", func(t *testing.T) {
		t.Parallel()
		snaps := &fakeSnapshots{}
		alloc := mocks.NewMockIDAllocator(t)
		alloc.EXPECT().Next(mock.Anything).Return(int64(5), nil).Once()
		alloc.EXPECT().Next(mock.Anything).Return(int64(6), nil).Once()
		s := NewTodoStore(snaps, alloc, discardLogger())
		_, err := s.Add(context.Background(), todo.Todo{ID: 5, Title: "held", Status: todo.StatusPending})
		require.NoError(t, err)

		created, err := s.Create(context.Background(), todo.Todo{Title: "new", Status: todo.StatusPending})

		require.NoError(t, err)
		assert.Equal(t, int64(6), created.ID)
	})

	t.Run("surfaces allocator failure", func(t *testing.T) {
		t.Parallel()
		snaps := &fakeSnapshots{}
		alloc := mocks.NewMockIDAllocator(t)
		alloc.EXPECT().Next(mock.Anything).Return(int64(0), context.Canceled)
		s := NewTodoStore(snaps, alloc, discardLogger())

		_, err := s.Create(context.Background(), todo.Todo{Title: "x", Status: todo.StatusPending})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, snaps.saveCount())
	})
}

func TestTodoStore_Create_ConcurrentIDsDistinct(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	const n = 40
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(context.Background(), todo.Todo{Title: "t", Status: todo.StatusPending})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := s.Query(context.Background(), todo.Filter{})
	require.NoError(t, err)
	seen := make(map[int64]bool, n)
	for _, id := range ids(all) {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestTodoStore_Add_DuplicateID(t *testing.T) {
	t.Parallel()
	s, snaps := newTestStore(t)
	first := todo.Todo{ID: 7, Title: "first", Status: todo.StatusPending}
	_, err := s.Add(context.Background(), first)
	require.NoError(t, err)

	_, err = s.Add(context.Background(), todo.Todo{ID: 7, Title: "second", Status: todo.StatusCompleted})

	var dup *domain.DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, int64(7), dup.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	got, err := s.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title, "store state must be unchanged")
	assert.Equal(t, 1, snaps.saveCount())
}

func TestTodoStore_SaveFailureLeavesMemory(t *testing.T) {
	t.Parallel()
	s, snaps := newTestStore(t)
	a := mustCreate(t, s, "A", todo.StatusPending)
	snaps.saveErr = domain.ErrUnavailable

	_, err := s.Move(context.Background(), a.ID, todo.StatusCompleted)
	require.ErrorIs(t, err, domain.ErrUnavailable)

	_, err = s.Create(context.Background(), todo.Todo{Title: "B", Status: todo.StatusPending})
	require.ErrorIs(t, err, domain.ErrUnavailable)

	err = s.Delete(context.Background(), a.ID)
	require.ErrorIs(t, err, domain.ErrUnavailable)

	all, err := s.Query(context.Background(), todo.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, todo.StatusPending, all[0].Status)
}

// --- Update ---

func TestTodoStore_Update(t *testing.T) {
	t.Parallel()

	t.Run("replaces all fields and keeps id", func(t *testing.T) {
		t.Parallel()
		s, snaps := newTestStore(t)
		a := mustCreate(t, s, "A", todo.StatusPending)
		due := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		got, err := s.Update(context.Background(), a.ID, todo.Todo{
			ID:          999,
			Title:       "A2",
			Description: "details",
			Status:      todo.StatusInProgress,
			DueDate:     &due,
		})

		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
		assert.Equal(t, "A2", got.Title)
		assert.Equal(t, "details", got.Description)
		assert.True(t, todo.SameDueDate(got.DueDate, &due))
		assert.Equal(t, 2, snaps.saveCount())
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)

		_, err := s.Update(context.Background(), 42, todo.Todo{Title: "x", Status: todo.StatusPending})

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, int64(42), nf.ID)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		a := mustCreate(t, s, "A", todo.StatusPending)

		_, err := s.Update(context.Background(), a.ID, todo.Todo{Title: "x", Status: "archived"})

		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unchanged patch does not save", func(t *testing.T) {
		t.Parallel()
		s, snaps := newTestStore(t)
		a := mustCreate(t, s, "A", todo.StatusPending)

		_, err := s.Update(context.Background(), a.ID, a)

		require.NoError(t, err)
		assert.Equal(t, 1, snaps.saveCount())
	})

	t.Run("returned value does not alias the store", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		a := mustCreate(t, s, "A", todo.StatusPending)
		due := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		got, err := s.Update(context.Background(), a.ID, todo.Todo{Title: "A", Status: todo.StatusInProgress, DueDate: &due})
		require.NoError(t, err)
		*got.DueDate = got.DueDate.Add(time.Hour)

		stored, err := s.Get(context.Background(), a.ID)
		require.NoError(t, err)
		assert.True(t, stored.DueDate.Equal(due))
	})
}

// --- Move ---

func TestTodoStore_Move(t *testing.T) {
	t.Parallel()

	t.Run("moved id appears only in target column", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		a := mustCreate(t, s, "A", todo.StatusPending)
		b := mustCreate(t, s, "B", todo.StatusPending)

		_, err := s.Move(context.Background(), a.ID, todo.StatusInProgress)
		require.NoError(t, err)

		inProgress, err := s.Query(context.Background(), todo.Filter{Status: todo.StatusInProgress})
		require.NoError(t, err)
		pending, err := s.Query(context.Background(), todo.Filter{Status: todo.StatusPending})
		require.NoError(t, err)
		assert.Equal(t, []int64{a.ID}, ids(inProgress))
		assert.Equal(t, []int64{b.ID}, ids(pending))
	})

	t.Run("same status is a no-op without save", func(t *testing.T) {
		t.Parallel()
		s, snaps := newTestStore(t)
		l := &recordingListener{}
		s.Subscribe(l)
		a := mustCreate(t, s, "A", todo.StatusPending)
		before := snaps.Load(context.Background())

		got, err := s.Move(context.Background(), a.ID, todo.StatusPending)

		require.NoError(t, err)
		assert.Equal(t, a, got)
		assert.Equal(t, 1, snaps.saveCount())
		assert.Equal(t, before, snaps.Load(context.Background()))
		assert.Equal(t, []ports.ChangeKind{ports.ChangeAdded}, l.kinds())
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)

		_, err := s.Move(context.Background(), 3, todo.StatusCompleted)

		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(t)
		a := mustCreate(t, s, "A", todo.StatusPending)

		_, err := s.Move(context.Background(), a.ID, "done")

		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestTodoStore_Move_DueDatePolicy(t *testing.T) {
	t.Parallel()
	due := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		clear   bool
		wantDue bool
	}{
		{name: "cleared when leaving in progress", clear: true, wantDue: false},
		{name: "retained when policy disabled", clear: false, wantDue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, _ := newTestStore(t, WithClearDueOnLeave(tt.clear))
			a, err := s.Create(context.Background(), todo.Todo{
				Title: "A", Status: todo.StatusInProgress, DueDate: timePtr(due),
			})
			require.NoError(t, err)

			got, err := s.Move(context.Background(), a.ID, todo.StatusCompleted)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDue, got.DueDate != nil)
		})
	}
}

// --- Delete ---

func TestTodoStore_Delete(t *testing.T) {
	t.Parallel()

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		s, snaps := newTestStore(t)
		l := &recordingListener{}
		s.Subscribe(l)
		a := mustCreate(t, s, "A", todo.StatusPending)
		b := mustCreate(t, s, "B", todo.StatusPending)

		require.NoError(t, s.Delete(context.Background(), a.ID))
		afterOnce := snaps.Load(context.Background())
		require.NoError(t, s.Delete(context.Background(), a.ID))

		assert.Equal(t, afterOnce, snaps.Load(context.Background()))
		assert.Equal(t, []int64{b.ID}, ids(afterOnce))
		assert.Equal(t, 3, snaps.saveCount())
		assert.Equal(t, []ports.ChangeKind{ports.ChangeAdded, ports.ChangeAdded, ports.ChangeDeleted}, l.kinds())
	})

	t.Run("absent id on empty store", func(t *testing.T) {
		t.Parallel()
		s, snaps := newTestStore(t)

		require.NoError(t, s.Delete(context.Background(), 1))
		assert.Equal(t, 0, snaps.saveCount())
	})
}

// --- Query / Get ---

func TestTodoStore_Query_InsertionOrderAndCopies(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "A", todo.StatusPending)
	b := mustCreate(t, s, "B", todo.StatusCompleted)
	c := mustCreate(t, s, "C", todo.StatusPending)

	all, err := s.Query(context.Background(), todo.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, ids(all))

	all[0].Title = "mutated"
	again, err := s.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Title)

	empty, err := s.Query(context.Background(), todo.Filter{Status: todo.StatusInProgress})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// --- Reload ---

func TestTodoStore_Reload(t *testing.T) {
	t.Parallel()
	snaps := &fakeSnapshots{stored: []todo.Todo{
		{ID: 4, Title: "four", Status: todo.StatusPending},
		{ID: 2, Title: "two", Status: todo.StatusCompleted},
		{ID: 4, Title: "dup", Status: todo.StatusPending},
	}}
	s := NewTodoStore(snaps, identity.New(snaps), discardLogger())
	l := &recordingListener{}
	s.Subscribe(l)

	s.Reload(context.Background())

	all, err := s.Query(context.Background(), todo.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2}, ids(all))
	assert.Equal(t, []ports.ChangeKind{ports.ChangeReloaded, ports.ChangeReloaded}, l.kinds())

	created := mustCreate(t, s, "five", todo.StatusPending)
	assert.Equal(t, int64(5), created.ID)

	snaps.mu.Lock()
	snaps.stored = snaps.stored[:1]
	snaps.mu.Unlock()
	l.changes = nil
	s.Reload(context.Background())

	assert.Equal(t, []ports.ChangeKind{ports.ChangeDeleted, ports.ChangeDeleted, ports.ChangeReloaded}, l.kinds())
}

func TestTodoStore_ListenersSeeSavedState(t *testing.T) {
	t.Parallel()
	snaps := mocks.NewMockSnapshotStore(t)
	snaps.EXPECT().Load(mock.Anything).Return(nil)
	snaps.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
	s := NewTodoStore(snaps, identity.New(snaps), discardLogger())
	l := &recordingListener{}
	s.Subscribe(l)

	_, err := s.Create(context.Background(), todo.Todo{Title: "A", Status: todo.StatusPending})

	require.Error(t, err)
	assert.Empty(t, l.kinds(), "listeners must not observe unsaved mutations")
}

func TestTodoStore_ListenerNotifiedAfterSave(t *testing.T) {
	t.Parallel()
	s, snaps := newTestStore(t)
	l := mocks.NewMockChangeListener(t)
	l.EXPECT().TodoChanged(mock.Anything, mock.MatchedBy(func(c ports.Change) bool {
		return c.Kind == ports.ChangeAdded && c.Todo.Title == "A"
	})).Run(func(context.Context, ports.Change) {
		assert.Equal(t, 1, snaps.saveCount(), "snapshot written before listeners run")
	}).Once()
	s.Subscribe(l)

	mustCreate(t, s, "A", todo.StatusPending)
}

func TestTodoStore_DueDateSurvivesReload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		due     time.Time
		wantErr bool
	}{
		{"last storable instant", time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC), false},
		{"offset pushes utc past 9999", time.Date(9999, 12, 31, 23, 0, 0, 0, time.FixedZone("EST", -5*3600)), true},
		{"negative year", time.Date(-1, 1, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			snaps := memory.New(discardLogger())
			s := NewTodoStore(snaps, identity.New(snaps), discardLogger())

			created, err := s.Create(context.Background(), todo.Todo{
				Title: "ship", Status: todo.StatusInProgress, DueDate: timePtr(tt.due),
			})

			if tt.wantErr {
				requireFieldError(t, err, "due_date")
				assert.Empty(t, snaps.Load(context.Background()))
				return
			}
			require.NoError(t, err)

			fresh := NewTodoStore(snaps, identity.New(snaps), discardLogger())
			fresh.Reload(context.Background())
			got, err := fresh.Get(context.Background(), created.ID)
			require.NoError(t, err)
			require.NotNil(t, got.DueDate)
			assert.True(t, got.DueDate.Equal(tt.due))
		})
	}
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, field)
}
