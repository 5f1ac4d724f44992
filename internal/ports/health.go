package ports

import "context"

// HealthChecker reports whether one dependency of the board can serve. The
// snapshot backends and the webhook client implement it.
type HealthChecker interface {
	// Name labels the result, e.g. "snapshot-file" or "webhook".
	Name() string

	// HealthCheck returns nil when healthy. It must give up when ctx ends.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them for the
// readiness probe and the check command.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns errors keyed by name, nil for
	// healthy ones.
	CheckAll(ctx context.Context) map[string]error
}
