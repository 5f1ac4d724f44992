// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The middleware chain processes requests in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → RateLimit → Timeout → Handler
//
// The first four are assembled by Standard and applied to the whole router.
// The event stream skips Timeout; its lifetime is bounded by the client.
package middleware

import "net/http"

// responseWriter records what a handler sent so recovery, otel and logging
// can report it after the fact.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
	flushes       int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status code and forwards it.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// FlushError forwards a flush and counts it. Event streams flush once per
// frame, so a non-zero count marks the response as streamed.
func (rw *responseWriter) FlushError() error {
	rw.headerWritten = true
	rw.flushes++
	return http.NewResponseController(rw.ResponseWriter).Flush()
}

// Flush implements http.Flusher for handlers that type-assert instead of
// using http.ResponseController.
func (rw *responseWriter) Flush() {
	_ = rw.FlushError()
}

func (rw *responseWriter) streamed() bool {
	return rw.flushes > 0
}

// Unwrap lets http.ResponseController reach deadline setters on the
// underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
