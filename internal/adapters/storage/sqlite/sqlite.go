// Package sqlite stores the todo snapshot as one row of a key/value table in
// a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/taskboard/internal/adapters/storage/snapshot"
	"github.com/jsamuelsen11/taskboard/internal/domain/todo"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

const (
	driverName = "sqlite"
	table      = "snapshots"
	todosKey   = "todos"
)

//go:embed schema.sql
var schemaFS embed.FS

var (
	_ ports.SnapshotStore = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store reads and writes the snapshot row.
type Store struct {
	db      *sqlx.DB
	builder squirrel.StatementBuilderType
	logger  *slog.Logger
	now     func() time.Time
}

// Open opens (or creates) the database at path and applies the schema.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sqlx.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// One writer at a time; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	s := New(db, logger)
	if err := s.applySchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection. The schema must already exist.
func New(db *sqlx.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Store) applySchema(ctx context.Context) error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Load implements ports.SnapshotStore.
func (s *Store) Load(ctx context.Context) []todo.Todo {
	payload, err := s.Payload(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read snapshot row", slog.Any("error", err))
		return []todo.Todo{}
	}
	if payload == nil {
		return []todo.Todo{}
	}

	todos, report := snapshot.Decode(payload)
	snapshot.LogReport(ctx, s.logger, "sqlite", report)
	return todos
}

// Payload returns the stored snapshot bytes without decoding them. A
// database that has never been saved to yields nil and no error.
func (s *Store) Payload(ctx context.Context) ([]byte, error) {
	query, args, err := s.builder.
		Select("payload").
		From(table).
		Where(squirrel.Eq{"key": todosKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building snapshot query: %w", err)
	}

	var payload string
	if err := s.db.GetContext(ctx, &payload, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot row: %w", err)
	}
	return []byte(payload), nil
}

// Save implements ports.SnapshotStore. The row is upserted in one statement.
func (s *Store) Save(ctx context.Context, todos []todo.Todo) error {
	data, err := snapshot.Encode(todos)
	if err != nil {
		return err
	}

	query, args, err := s.builder.
		Insert(table).
		Columns("key", "payload", "updated_at").
		Values(todosKey, string(data), s.now().UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building snapshot upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing snapshot row: %w", err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "snapshot-sqlite" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
