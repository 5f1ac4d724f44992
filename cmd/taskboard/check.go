package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/snapshot"
	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
)

// errDirtySnapshot makes "check" exit non-zero when loading would lose data.
var errDirtySnapshot = errors.New("snapshot has unreadable or skipped records")

type checkOptions struct {
	driver string
}

func newCheckCommand(global *globalOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Validate a snapshot and report records that loading would skip",
		Long: `check decodes a snapshot the same way the server does at startup and lists
every record that would be dropped. Without a path it checks the storage
configured for --profile.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, path := opts.driver, ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := loadConfig(global)
				if err != nil {
					return err
				}
				driver, path = cfg.Storage.Driver, cfg.Storage.Path
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), driver, path)
		},
	}

	cmd.Flags().StringVar(&opts.driver, "driver", config.StorageFile,
		"storage driver of the path argument: file or sqlite")

	return cmd
}

func runCheck(ctx context.Context, out io.Writer, driver, path string) error {
	data, err := readSnapshot(ctx, driver, path)
	if err != nil {
		return err
	}

	todos, report := snapshot.Decode(data)
	printReport(out, path, todos, report)

	if !report.Clean() {
		return errDirtySnapshot
	}
	return nil
}

// readSnapshot returns the raw payload for driver. A snapshot that has never
// been written reads as empty.
func readSnapshot(ctx context.Context, driver, path string) ([]byte, error) {
	switch driver {
	case config.StorageFile:
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading snapshot file: %w", err)
		}
		return data, nil
	case config.StorageSQLite:
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		store, err := sqlite.Open(ctx, path, nil)
		if err != nil {
			return nil, err
		}
		defer store.Close() //nolint:errcheck // read-only use
		return store.Payload(ctx)
	case config.StorageMemory:
		return nil, errors.New("memory storage keeps no snapshot to check")
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func printReport(out io.Writer, path string, todos []todo.Todo, report snapshot.Report) {
	counts := make(map[todo.Status]int, len(todo.Statuses()))
	for _, t := range todos {
		counts[t.Status]++
	}

	fmt.Fprintf(out, "snapshot %s\n", path)
	if report.Corrupt != nil {
		fmt.Fprintf(out, "  unreadable: %v\n", report.Corrupt)
	}
	fmt.Fprintf(out, "  loaded:  %d\n", len(todos))
	for _, s := range todo.Statuses() {
		fmt.Fprintf(out, "    %-12s %d\n", s, counts[s])
	}
	fmt.Fprintf(out, "  skipped: %d\n", len(report.Skipped))
	for _, s := range report.Skipped {
		fmt.Fprintf(out, "    record %d: %s\n", s.Index, s.Reason)
	}
}

func loadConfig(global *globalOptions) (*config.Config, error) {
	if global.profile == "" {
		return nil, fmt.Errorf("a config profile is required: pass --profile or set %s (e.g. local, prod)", profileEnv)
	}
	cfg, err := config.Load(global.profile, config.WithConfigDir(global.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
