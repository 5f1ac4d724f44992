// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"cmp"
	"slices"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/app/events"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
	}
	if t.DueDate != nil {
		s := t.DueDate.UTC().Format(time.RFC3339)
		resp.DueDate = &s
	}
	return resp
}

// TodoListResponse represents a list of todos in HTTP responses.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoListResponse converts todos to a list response.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{Todos: items, Count: len(items)}
}

// CountdownResponse is a todo's live deadline as shown on its card.
type CountdownResponse struct {
	Remaining        string `json:"remaining"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Overdue          bool   `json:"overdue"`
}

// CardResponse is a todo placed in a board column.
type CardResponse struct {
	TodoResponse
	Countdown *CountdownResponse `json:"countdown,omitempty"`
}

// ColumnResponse is one board stage with its cards.
type ColumnResponse struct {
	Status string         `json:"status"`
	Label  string         `json:"label"`
	Color  string         `json:"color"`
	Cards  []CardResponse `json:"cards"`
}

// BoardResponse is the three-column board view.
type BoardResponse struct {
	Columns []ColumnResponse `json:"columns"`
	Count   int              `json:"count"`
}

// ToBoardResponse groups todos into columns, newest id first within each
// column. countdowns may be nil.
func ToBoardResponse(todos []todo.Todo, countdowns ports.Countdowns) BoardResponse {
	byStatus := make(map[todo.Status][]todo.Todo, len(columns))
	for _, t := range todos {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	resp := BoardResponse{Columns: make([]ColumnResponse, 0, len(columns)), Count: len(todos)}
	for _, col := range columns {
		items := byStatus[col.Status]
		slices.SortFunc(items, func(a, b todo.Todo) int {
			return cmp.Compare(b.ID, a.ID)
		})

		cards := make([]CardResponse, len(items))
		for i := range items {
			cards[i] = CardResponse{TodoResponse: ToTodoResponse(&items[i])}
			if countdowns == nil || !items[i].HasDeadline() {
				continue
			}
			if state, ok := countdowns.Remaining(items[i].ID); ok {
				cards[i].Countdown = &CountdownResponse{
					Remaining:        todo.FormatRemaining(state.Remaining),
					RemainingSeconds: int64(state.Remaining / time.Second),
					Overdue:          state.Overdue,
				}
			}
		}

		resp.Columns = append(resp.Columns, ColumnResponse{
			Status: col.Status.String(),
			Label:  col.Label,
			Color:  col.Color,
			Cards:  cards,
		})
	}
	return resp
}

// DragSessionResponse represents an in-flight drag session.
type DragSessionResponse struct {
	ID           string `json:"id"`
	State        string `json:"state"`
	TodoID       int64  `json:"todo_id"`
	OriginStatus string `json:"origin_status"`
	Target       string `json:"target,omitempty"`
}

// ToDragSessionResponse converts a drag session snapshot.
func ToDragSessionResponse(s *ports.DragSession) DragSessionResponse {
	return DragSessionResponse{
		ID:           s.ID.String(),
		State:        string(s.State),
		TodoID:       s.Payload.TodoID,
		OriginStatus: s.Payload.OriginStatus.String(),
		Target:       s.Target.String(),
	}
}

// DropResponse reports the outcome of a drop.
type DropResponse struct {
	Moved bool          `json:"moved"`
	Todo  *TodoResponse `json:"todo,omitempty"`
}

// ToDropResponse converts a drop result.
func ToDropResponse(r *ports.DropResult) DropResponse {
	resp := DropResponse{Moved: r.Moved}
	if r.Todo != nil {
		t := ToTodoResponse(r.Todo)
		resp.Todo = &t
	}
	return resp
}

// OverdueResponse is the payload of an overdue event.
type OverdueResponse struct {
	TodoID     int64  `json:"todo_id"`
	Title      string `json:"title"`
	DueDate    string `json:"due_date"`
	DetectedAt string `json:"detected_at"`
}

// EventResponse is the data field of one server-sent event.
type EventResponse struct {
	Seq      uint64           `json:"seq"`
	Kind     string           `json:"kind"`
	At       string           `json:"at"`
	Todo     *TodoResponse    `json:"todo,omitempty"`
	Previous *TodoResponse    `json:"previous,omitempty"`
	Overdue  *OverdueResponse `json:"overdue,omitempty"`
}

// ToEventResponse converts a bus event.
func ToEventResponse(ev *events.Event) EventResponse {
	resp := EventResponse{
		Seq:  ev.Seq,
		Kind: string(ev.Kind),
		At:   ev.At.UTC().Format(time.RFC3339Nano),
	}
	if ev.Todo != nil {
		t := ToTodoResponse(ev.Todo)
		resp.Todo = &t
	}
	if ev.Previous != nil {
		p := ToTodoResponse(ev.Previous)
		resp.Previous = &p
	}
	if ev.Overdue != nil {
		resp.Overdue = &OverdueResponse{
			TodoID:     ev.Overdue.TodoID,
			Title:      ev.Overdue.Title,
			DueDate:    ev.Overdue.DueDate.UTC().Format(time.RFC3339),
			DetectedAt: ev.Overdue.DetectedAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return resp
}
