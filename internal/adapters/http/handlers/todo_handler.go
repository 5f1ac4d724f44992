package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// TodoHandler handles HTTP requests for todo CRUD and moves.
type TodoHandler struct {
	store ports.TodoStore
}

// NewTodoHandler creates a new TodoHandler backed by the todo store.
func NewTodoHandler(store ports.TodoStore) *TodoHandler {
	return &TodoHandler{store: store}
}

// ListTodos handles GET /api/v1/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	filter, err := statusFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.store.Query(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(todos))
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeTodo(w, r)
	if !ok {
		return
	}

	created, err := h.store.Create(r.Context(), draft)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(&created))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.store.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(&t))
}

// UpdateTodo handles PUT /api/v1/todos/{id}. The body replaces every field.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	patch, ok := decodeTodo(w, r)
	if !ok {
		return
	}

	updated, err := h.store.Update(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(&updated))
}

// MoveTodo handles POST /api/v1/todos/{id}/move.
func (h *TodoHandler) MoveTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	target, ok := decodeStatus(w, r)
	if !ok {
		return
	}

	moved, err := h.store.Move(r.Context(), id, target)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(&moved))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}. Deleting an absent id
// succeeds.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
