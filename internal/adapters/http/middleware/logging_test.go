package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
)

func TestLogging_CompletionLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Post("/api/v1/todos/{id}/move", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/todos/12/move", http.NoBody))

	out := buf.String()
	assert.Contains(t, out, "request started")
	assert.Contains(t, out, `msg="request completed"`)
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/api/v1/todos/12/move")
	assert.Contains(t, out, "route=/api/v1/todos/{id}/move")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "bytes=11")
	assert.Contains(t, out, "streamed=false")
	assert.Contains(t, out, "duration=")
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		level  string
	}{
		{name: "success", status: http.StatusNoContent, level: "level=INFO"},
		{name: "client error", status: http.StatusNotFound, level: "level=WARN"},
		{name: "server error", status: http.StatusServiceUnavailable, level: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/todos/9", http.NoBody))

			assert.Contains(t, buf.String(), tt.level+` msg="request completed"`)
		})
	}
}

func TestLogging_StartLineOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(infoLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody))

	assert.NotContains(t, buf.String(), "request started")
	assert.Contains(t, buf.String(), "request completed")
}

func TestLogging_MarksStreamedResponses(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(": heartbeat\n\n"))
		_ = http.NewResponseController(w).Flush()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/events", http.NoBody))

	assert.Contains(t, buf.String(), "streamed=true")
}

func TestLogging_EnrichesContextLoggerWithRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("handler log")
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
	req.Header.Set("X-Request-ID", "ctx-logger-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `msg="handler log" request_id=ctx-logger-test`)
	assert.NotContains(t, out, "correlation_id")
}
