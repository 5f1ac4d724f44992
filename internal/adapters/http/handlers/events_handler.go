package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/app/events"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
)

// DefaultHeartbeat is the idle interval between SSE keep-alive comments.
const DefaultHeartbeat = 15 * time.Second

// eventBuffer is the per-connection queue length.
const eventBuffer = 64

// EventSource is the subscription side of the event bus.
type EventSource interface {
	Subscribe(buffer int) (<-chan events.Event, func())
}

// EventsHandler streams board events as Server-Sent Events.
type EventsHandler struct {
	source    EventSource
	heartbeat time.Duration
}

// NewEventsHandler creates an EventsHandler. A non-positive heartbeat uses
// DefaultHeartbeat.
func NewEventsHandler(source EventSource, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &EventsHandler{source: source, heartbeat: heartbeat}
}

// Stream handles GET /api/v1/events. The stream ends when the client goes
// away or the bus closes.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	logger := logging.FromContext(r.Context())

	// The server WriteTimeout would otherwise cut the stream.
	_ = rc.SetWriteDeadline(time.Time{})

	ch, cancel := h.source.Subscribe(eventBuffer)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, ": connected\n\n"); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		if errors.Is(err, http.ErrNotSupported) {
			logger.ErrorContext(r.Context(), "event stream requires a flushing response writer")
		}
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := io.WriteString(w, ": heartbeat\n\n"); err != nil {
				return
			}
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if err := writeEvent(w, &ev); err != nil {
				logger.WarnContext(r.Context(), "writing event failed", slog.Any("error", err))
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

// writeEvent renders one event in text/event-stream framing.
func writeEvent(w io.Writer, ev *events.Event) error {
	data, err := json.Marshal(dto.ToEventResponse(ev))
	if err != nil {
		return fmt.Errorf("encoding event %d: %w", ev.Seq, err)
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", ev.Seq, ev.Kind, data)
	return err
}
