package events

import (
	"context"

	"github.com/jsamuelsen11/taskboard/internal/ports"
)

var _ ports.OverdueSink = MultiSink(nil)

// MultiSink forwards each overdue notification to every sink in order. Nil
// entries are skipped.
type MultiSink []ports.OverdueSink

// NotifyOverdue calls NotifyOverdue on each sink.
func (m MultiSink) NotifyOverdue(ctx context.Context, event ports.OverdueEvent) {
	for _, s := range m {
		if s != nil {
			s.NotifyOverdue(ctx, event)
		}
	}
}
