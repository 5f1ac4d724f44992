package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
)

// TodoRequest is the JSON body for creating a todo or replacing one.
// Status defaults to pending when empty.
type TodoRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Validate checks that required fields are present and the status, when
// given, names a board column. Returns a *domain.ValidationError.
func (r *TodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if r.Status != "" && !todo.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToTodo converts the request into a domain value with no id.
func (r *TodoRequest) ToTodo() todo.Todo {
	status := todo.Status(r.Status)
	if status == "" {
		status = todo.StatusPending
	}
	t := todo.Todo{
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
	}
	if r.DueDate != nil {
		due := r.DueDate.UTC()
		t.DueDate = &due
	}
	return t
}

// StatusRequest is the JSON body for moving a todo or hovering a column.
type StatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that status names a board column.
func (r *StatusRequest) Validate() error {
	switch {
	case r.Status == "":
		return &domain.ValidationError{Fields: map[string]string{"status": domain.MsgRequired}}
	case !todo.Status(r.Status).IsValid():
		return &domain.ValidationError{Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", r.Status)}}
	}
	return nil
}

// BeginDragRequest is the JSON body for starting a drag session.
type BeginDragRequest struct {
	TodoID int64 `json:"todo_id"`
}

// Validate checks that a todo id was given.
func (r *BeginDragRequest) Validate() error {
	if r.TodoID <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"todo_id": "must be a positive integer"}}
	}
	return nil
}
