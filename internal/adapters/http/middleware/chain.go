package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
)

// Chain composes middleware so the first argument runs outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Standard returns the router-wide pipeline: Recovery, RequestID,
// OpenTelemetry and Logging, outermost first. Recovery sits outside the
// others so a panic in any of them still produces a response.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
}
