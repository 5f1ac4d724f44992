package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/webhook"
	adapthttp "github.com/jsamuelsen11/taskboard/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/app/countdown"
	"github.com/jsamuelsen11/taskboard/internal/app/events"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
)

const (
	notifierDrainTimeout = 10 * time.Second
	otelShutdownTimeout  = 5 * time.Second
)

func newServeCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the board API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), global)
		},
	}
}

func runServe(ctx context.Context, global *globalOptions) error {
	// Bootstrap: config, logger, telemetry.
	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("version", Version),
	)

	otel, err := telemetry.Setup(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	do.ProvideValue[clockwork.Clock](injector, clockwork.NewRealClock())

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	backend := do.MustInvoke[*snapshotBackend](injector)
	store := do.MustInvoke[*app.TodoStore](injector)
	timer := do.MustInvoke[*countdown.Timer](injector)
	bus := do.MustInvoke[*events.Bus](injector)
	recorder := do.MustInvoke[*events.Recorder](injector)
	notifier := do.MustInvoke[*webhook.Notifier](injector)

	// The timer listens first so a delete cancels its countdown before any
	// subscriber sees the event.
	store.Subscribe(timer)
	store.Subscribe(bus)
	store.Subscribe(recorder)
	store.Reload(ctx)

	runErr := server.Run(ctx)
	if runErr != nil {
		logger.Error("server stopped", slog.Any("error", runErr))
	} else {
		logger.Info("received shutdown signal")
	}

	// Stop producing overdue events before draining their consumers.
	timer.Stop()

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifierDrainTimeout)
	defer cancel()
	if err := notifier.Close(drainCtx); err != nil {
		logger.Warn("webhook deliveries abandoned", slog.Any("error", err))
	}
	bus.Close()

	if err := backend.close(); err != nil {
		logger.Error("snapshot store close error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return runErr
}
