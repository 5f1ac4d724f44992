package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
)

// Logging stores a request-scoped logger carrying the request ID in the
// context, where handlers and the store pick it up via logging.FromContext.
//
// One completion line is written per request with the matched route, status,
// bytes written and duration. Server errors log at ERROR and client errors at
// WARN. Event streams are marked streamed=true so their long durations are
// not mistaken for slow requests.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(slog.String("request_id", RequestIDFromContext(ctx)))
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				args := []any{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				for _, a := range RedactHeaders(r.Header) {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request started", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.LogAttrs(ctx, completionLevel(rw.statusCode), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Bool("streamed", rw.streamed()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

