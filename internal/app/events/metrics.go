package events

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

var (
	_ ports.ChangeListener = (*Recorder)(nil)
	_ ports.OverdueSink    = (*Recorder)(nil)
)

// Recorder counts store mutations and overdue notifications on the board
// metric instruments. A nil *telemetry.Metrics disables recording.
type Recorder struct {
	metrics *telemetry.Metrics
}

// NewRecorder creates a Recorder backed by m.
func NewRecorder(m *telemetry.Metrics) *Recorder {
	return &Recorder{metrics: m}
}

// TodoChanged increments board.todo.mutations by change kind and resulting
// status.
func (r *Recorder) TodoChanged(ctx context.Context, change ports.Change) {
	if r.metrics == nil {
		return
	}
	r.metrics.TodoMutations.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(string(change.Kind)),
		telemetry.AttrStatus.String(change.Todo.Status.String()),
	))
}

// NotifyOverdue increments board.todo.overdue.
func (r *Recorder) NotifyOverdue(ctx context.Context, _ ports.OverdueEvent) {
	if r.metrics == nil {
		return
	}
	r.metrics.TodoOverdue.Add(ctx, 1)
}
