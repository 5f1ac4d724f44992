package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies. A todo is a title, a description and
// a timestamp; 1 MB is generous.
const maxJSONBodyBytes = 1 << 20

func fieldError(field, msg string) error {
	return &domain.ValidationError{Fields: map[string]string{field: msg}}
}

// todoID reads the {id} path parameter.
func todoID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fieldError("id", "must be a valid integer")
	}
	return id, nil
}

// sessionID reads the {sid} path parameter.
func sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		return uuid.Nil, fieldError("sid", "must be a valid UUID")
	}
	return id, nil
}

// statusFilter reads the optional ?status= query parameter.
func statusFilter(r *http.Request) (todo.Filter, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return todo.Filter{}, nil
	}
	if s := todo.Status(raw); s.IsValid() {
		return todo.Filter{Status: s}, nil
	}
	return todo.Filter{}, fieldError("status", fmt.Sprintf("invalid: %q", raw))
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "response encoding failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

type validatable interface {
	Validate() error
}

// readBody decodes exactly one JSON value from the request body into dst.
func readBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return fieldError("body", "must not be empty")
		case errors.As(err, &tooLarge):
			return fieldError("body", fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit))
		default:
			return fieldError("body", "invalid JSON")
		}
	}
	if dec.More() {
		return fieldError("body", "must contain a single JSON object")
	}
	return nil
}

// decodeAndValidate fills dst from the body and runs its Validate method.
// It reports false after writing the error response itself.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := readBody(w, r, dst)
	if err == nil {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func decodeTodo(w http.ResponseWriter, r *http.Request) (todo.Todo, bool) {
	var req dto.TodoRequest
	if !decodeAndValidate(w, r, &req) {
		return todo.Todo{}, false
	}
	return req.ToTodo(), true
}

func decodeStatus(w http.ResponseWriter, r *http.Request) (todo.Status, bool) {
	var req dto.StatusRequest
	if !decodeAndValidate(w, r, &req) {
		return "", false
	}
	return todo.Status(req.Status), true
}
