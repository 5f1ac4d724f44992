package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
)

// Recovery turns a handler panic into a logged stack trace and a 500 problem
// response. The panic value never reaches the client. When the handler had
// already started its response, only the log entry is written.
//
// http.ErrAbortHandler is re-raised so net/http can abort the connection
// quietly; the event stream uses it when a client goes away mid-frame.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("request_id", recoveredRequestID(w, r)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r)),
				)

				if !rw.headerWritten {
					dto.WriteProblem(rw, r, http.StatusInternalServerError, "")
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// recoveredRequestID finds the request ID for a panic log. Recovery runs
// outside RequestID, so the ID is usually only visible on the response
// header that RequestID already set.
func recoveredRequestID(w http.ResponseWriter, r *http.Request) string {
	if id := RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return w.Header().Get(httpclient.HeaderRequestID)
}
