package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/middleware"
)

func TestTimeout_PassesBufferedResponse(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.Header().Set("Location", "/api/v1/todos/8")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":8}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/todos", http.NoBody))

	assert.True(t, hasDeadline)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/todos/8", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":8}`, rec.Body.String())
}

func TestTimeout_ImplicitOK(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestTimeout_WritesProblemAndRejectsLateWrites(t *testing.T) {
	t.Parallel()

	lateErr := make(chan error, 1)
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateErr <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody))

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "request exceeded 20ms", body["detail"])

	assert.True(t, errors.Is(<-lateErr, http.ErrHandlerTimeout))
	assert.NotContains(t, rec.Body.String(), "too late")
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain(
		middleware.Recovery(discardLogger()),
		middleware.Timeout(time.Second),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("handler bug")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/todos/2", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestTimeout_NonPositiveDisables(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		var hasDeadline bool
		handler := middleware.Timeout(d)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/events", http.NoBody))

		assert.False(t, hasDeadline, "timeout %v", d)
	}
}
