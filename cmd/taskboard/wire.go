package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/jonboulle/clockwork"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/webhook"
	adapthttp "github.com/jsamuelsen11/taskboard/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/breaker"
	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/file"
	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/app/countdown"
	"github.com/jsamuelsen11/taskboard/internal/app/dragdrop"
	"github.com/jsamuelsen11/taskboard/internal/app/events"
	"github.com/jsamuelsen11/taskboard/internal/app/identity"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/health"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// snapshotBackend is the configured SnapshotStore behind its breaker, plus
// whatever must be released at shutdown.
type snapshotBackend struct {
	*breaker.Store
	close func() error
}

func openSnapshotBackend(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*snapshotBackend, error) {
	var (
		inner ports.SnapshotStore
		name  string
		done  = func() error { return nil }
	)

	switch cfg.Driver {
	case config.StorageFile:
		s := file.New(cfg.Path, logger)
		inner, name = s, s.Name()
	case config.StorageSQLite:
		s, err := sqlite.Open(ctx, cfg.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite snapshot store: %w", err)
		}
		inner, name, done = s, s.Name(), s.Close
	case config.StorageMemory:
		inner, name = memory.New(logger), "snapshot-memory"
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	return &snapshotBackend{
		Store: breaker.New(inner, name, cfg.CircuitBreaker, logger),
		close: done,
	}, nil
}

// registerDependencies provides every component of the board to the
// container. cfg, logger, the clock and *telemetry.Metrics must already be
// provided as values.
func registerDependencies(ctx context.Context, injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*snapshotBackend, error) {
		return openSnapshotBackend(ctx, cfg.Storage, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.IDAllocator, error) {
		backend := do.MustInvoke[*snapshotBackend](i)
		return identity.New(backend), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.TodoStore, error) {
		backend := do.MustInvoke[*snapshotBackend](i)
		ids := do.MustInvoke[ports.IDAllocator](i)
		return app.NewTodoStore(backend, ids, logger,
			app.WithClearDueOnLeave(cfg.Board.ClearDueOnLeave),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*events.Bus, error) {
		clock := do.MustInvoke[clockwork.Clock](i)
		return events.NewBus(clock, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*events.Recorder, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return events.NewRecorder(metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Notify.Client, "webhook", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*webhook.Notifier, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return webhook.New(client, cfg.Notify.WebhookURLs, cfg.Notify.Secret, cfg.Notify.MaxWorkers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*countdown.Timer, error) {
		store := do.MustInvoke[*app.TodoStore](i)
		clock := do.MustInvoke[clockwork.Clock](i)
		sink := events.MultiSink{
			do.MustInvoke[*events.Bus](i),
			do.MustInvoke[*events.Recorder](i),
			do.MustInvoke[*webhook.Notifier](i),
		}
		return countdown.New(store, sink, clock, cfg.Board.TickInterval, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DragCoordinator, error) {
		store := do.MustInvoke[*app.TodoStore](i)
		clock := do.MustInvoke[clockwork.Clock](i)
		return dragdrop.NewCoordinator(store, clock, cfg.Board.DragTTL, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*snapshotBackend](i))
		if len(cfg.Notify.WebhookURLs) > 0 {
			registry.Register(do.MustInvoke[*webhook.Notifier](i))
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		store := do.MustInvoke[*app.TodoStore](i)
		return adapthttp.Handlers{
			Todo:   handlers.NewTodoHandler(store),
			Board:  handlers.NewBoardHandler(store, do.MustInvoke[*countdown.Timer](i)),
			Drag:   handlers.NewDragHandler(do.MustInvoke[ports.DragCoordinator](i)),
			Events: handlers.NewEventsHandler(do.MustInvoke[*events.Bus](i), cfg.Server.SSEHeartbeat),
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(cfg.Server, h, middleware.Standard(logger, metrics)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		server := adapthttp.NewServer(cfg.Server, handler, logger)
		server.OnShutdown(do.MustInvoke[*events.Bus](i).Close)
		return server, nil
	})
}
