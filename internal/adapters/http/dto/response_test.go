package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/app/events"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
	"github.com/jsamuelsen11/taskboard/mocks"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          1,
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Status:      todo.StatusPending,
	}
}

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	td := validTodo()
	got := dto.ToTodoResponse(&td)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Buy groceries", got.Title)
	assert.Equal(t, "Milk, eggs, bread", got.Description)
	assert.Equal(t, "pending", got.Status)
	assert.Nil(t, got.DueDate)

	due := testTime.In(time.FixedZone("EST", -5*3600))
	td.DueDate = &due
	got = dto.ToTodoResponse(&td)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2026-02-12T15:04:05Z", *got.DueDate)
}

func TestTodoResponse_JSONSerialization(t *testing.T) {
	t.Parallel()

	td := validTodo()
	data, err := json.Marshal(dto.ToTodoResponse(&td))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"id", "title", "description", "status", "due_date"} {
		assert.Contains(t, raw, key)
	}
	assert.Nil(t, raw["due_date"], "absent due date serialises as null")
}

func TestToTodoListResponse(t *testing.T) {
	t.Parallel()

	empty := dto.ToTodoListResponse(nil)
	assert.NotNil(t, empty.Todos)
	assert.Equal(t, 0, empty.Count)

	a, b := validTodo(), validTodo()
	b.ID = 2
	got := dto.ToTodoListResponse([]todo.Todo{a, b})
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, int64(2), got.Todos[1].ID)
}

func TestToBoardResponse_GroupsNewestFirstWithCountdowns(t *testing.T) {
	t.Parallel()

	due := testTime.Add(time.Hour)
	todos := []todo.Todo{
		{ID: 1, Title: "a", Status: todo.StatusPending},
		{ID: 2, Title: "b", Status: todo.StatusInProgress, DueDate: &due},
		{ID: 3, Title: "c", Status: todo.StatusPending},
		{ID: 4, Title: "d", Status: todo.StatusInProgress},
		{ID: 5, Title: "e", Status: todo.StatusCompleted, DueDate: &due},
	}

	countdowns := mocks.NewMockCountdowns(t)
	countdowns.EXPECT().Remaining(int64(2)).Return(ports.CountdownState{Remaining: 90*time.Minute + 5*time.Second}, true)

	got := dto.ToBoardResponse(todos, countdowns)

	require.Len(t, got.Columns, 3)
	assert.Equal(t, 5, got.Count)

	pending := got.Columns[0]
	assert.Equal(t, "pending", pending.Status)
	assert.Equal(t, "New", pending.Label)
	assert.Equal(t, "blue", pending.Color)
	require.Len(t, pending.Cards, 2)
	assert.Equal(t, int64(3), pending.Cards[0].ID)
	assert.Equal(t, int64(1), pending.Cards[1].ID)

	inProgress := got.Columns[1]
	assert.Equal(t, "Ongoing", inProgress.Label)
	require.Len(t, inProgress.Cards, 2)
	assert.Equal(t, int64(4), inProgress.Cards[0].ID)
	assert.Nil(t, inProgress.Cards[0].Countdown)
	require.NotNil(t, inProgress.Cards[1].Countdown)
	assert.Equal(t, "01:30:05", inProgress.Cards[1].Countdown.Remaining)
	assert.Equal(t, int64(5405), inProgress.Cards[1].Countdown.RemainingSeconds)
	assert.False(t, inProgress.Cards[1].Countdown.Overdue)

	done := got.Columns[2]
	assert.Equal(t, "green", done.Color)
	require.Len(t, done.Cards, 1)
	assert.Nil(t, done.Cards[0].Countdown, "completed todos never show a countdown")
}

func TestToBoardResponse_EmptyBoardHasAllColumns(t *testing.T) {
	t.Parallel()

	got := dto.ToBoardResponse(nil, nil)
	require.Len(t, got.Columns, 3)
	for _, c := range got.Columns {
		assert.NotNil(t, c.Cards)
		assert.Empty(t, c.Cards)
	}
}

func TestToDragSessionResponse(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c1b9e-3f0a-4d59-9a57-2e7c3b1f0d11")
	got := dto.ToDragSessionResponse(&ports.DragSession{
		ID:      id,
		State:   ports.DragHovering,
		Payload: ports.DragPayload{TodoID: 8, OriginStatus: todo.StatusPending},
		Target:  todo.StatusCompleted,
	})

	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, "hovering", got.State)
	assert.Equal(t, int64(8), got.TodoID)
	assert.Equal(t, "pending", got.OriginStatus)
	assert.Equal(t, "completed", got.Target)
}

func TestToDropResponse(t *testing.T) {
	t.Parallel()

	none := dto.ToDropResponse(&ports.DropResult{})
	assert.False(t, none.Moved)
	assert.Nil(t, none.Todo)

	td := validTodo()
	moved := dto.ToDropResponse(&ports.DropResult{Moved: true, Todo: &td})
	assert.True(t, moved.Moved)
	require.NotNil(t, moved.Todo)
	assert.Equal(t, int64(1), moved.Todo.ID)
}

func TestToEventResponse(t *testing.T) {
	t.Parallel()

	td := validTodo()
	got := dto.ToEventResponse(&events.Event{Seq: 3, Kind: events.KindAdded, At: testTime, Todo: &td})
	assert.Equal(t, uint64(3), got.Seq)
	assert.Equal(t, "todo.added", got.Kind)
	assert.Equal(t, "2026-02-12T15:04:05Z", got.At)
	require.NotNil(t, got.Todo)
	assert.Nil(t, got.Overdue)

	overdue := dto.ToEventResponse(&events.Event{
		Seq:     4,
		Kind:    events.KindOverdue,
		At:      testTime,
		Overdue: &ports.OverdueEvent{TodoID: 1, Title: "x", DueDate: testTime, DetectedAt: testTime},
	})
	require.NotNil(t, overdue.Overdue)
	assert.Equal(t, int64(1), overdue.Overdue.TodoID)
	assert.Equal(t, "2026-02-12T15:04:05Z", overdue.Overdue.DueDate)
	assert.Nil(t, overdue.Todo)
}
