// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Todo   *handlers.TodoHandler
	Board  *handlers.BoardHandler
	Drag   *handlers.DragHandler
	Events *handlers.EventsHandler
	Health *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. API routes share the
// configured rate limit; every API route except the event stream is bounded
// by cfg.RequestTimeout.
func NewRouter(
	cfg config.ServerConfig,
	h Handlers,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit))

		r.Get("/events", h.Events.Stream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(cfg.RequestTimeout))

			r.Get("/board", h.Board.GetBoard)

			r.Get("/todos", h.Todo.ListTodos)
			r.Post("/todos", h.Todo.CreateTodo)
			r.Get("/todos/{id}", h.Todo.GetTodo)
			r.Put("/todos/{id}", h.Todo.UpdateTodo)
			r.Delete("/todos/{id}", h.Todo.DeleteTodo)
			r.Post("/todos/{id}/move", h.Todo.MoveTodo)

			r.Post("/drag", h.Drag.BeginDrag)
			r.Delete("/drag/{sid}", h.Drag.CancelDrag)
			r.Put("/drag/{sid}/hover", h.Drag.Hover)
			r.Delete("/drag/{sid}/hover", h.Drag.Leave)
			r.Post("/drag/{sid}/drop", h.Drag.Drop)
		})
	})

	return r
}
