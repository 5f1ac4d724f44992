// Package breaker guards a SnapshotStore's writes with a circuit breaker so a
// failing disk or database fails fast instead of stalling every mutation.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

var (
	_ ports.SnapshotStore = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store decorates a SnapshotStore. Load passes straight through; Save runs
// inside the breaker and every failure is reported as domain.ErrUnavailable.
// A cancelled or expired caller context is returned as is and does not count
// against the breaker.
type Store struct {
	next    ports.SnapshotStore
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
}

// New wraps next. name identifies the store in logs and health output.
func New(next ports.SnapshotStore, name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: halfOpenProbes(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || callerGaveUp(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return &Store{next: next, name: name, breaker: cb}
}

// Load implements ports.SnapshotStore.
func (s *Store) Load(ctx context.Context) []todo.Todo {
	return s.next.Load(ctx)
}

// Save implements ports.SnapshotStore.
func (s *Store) Save(ctx context.Context, todos []todo.Todo) error {
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.next.Save(ctx, todos)
	})
	if err == nil {
		return nil
	}
	if callerGaveUp(err) {
		return err
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s: %w: %w", s.name, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return s.name }

// HealthCheck reports the breaker state, then defers to the wrapped store
// when it can check itself.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", s.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", s.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", s.name, state)
	}

	if hc, ok := s.next.(ports.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

func callerGaveUp(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// halfOpenProbes converts the configured half-open limit. Anything past
// MaxUint16 is treated as that many probes.
func halfOpenProbes(n int) uint32 {
	return uint32(min(max(n, 0), math.MaxUint16))
}
