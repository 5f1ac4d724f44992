package snapshot

import (
	"context"
	"log/slog"
)

// LogReport records what Decode discarded. A corrupt payload and each
// skipped record are logged at WARN; a clean report logs nothing.
func LogReport(ctx context.Context, logger *slog.Logger, source string, report Report) {
	if report.Corrupt != nil {
		logger.WarnContext(ctx, "snapshot unreadable, starting empty",
			slog.String("source", source),
			slog.Any("error", report.Corrupt),
		)
	}
	for _, s := range report.Skipped {
		logger.WarnContext(ctx, "skipped invalid snapshot record",
			slog.String("source", source),
			slog.Int("index", s.Index),
			slog.String("reason", s.Reason),
		)
	}
}
