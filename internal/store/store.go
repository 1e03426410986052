package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
)

// Options selects and locates the backing database.
type Options struct {
	Driver string // "sqlite" (default) or "pgx"
	Path   string // sqlite file, or ":memory:"
	DSN    string // PostgreSQL connection string
}

// Store provides read access to detection records plus the one-time seed.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Open connects to the configured database, applies pragmas and the schema.
// Connection failures are wrapped in domain.ErrStorageUnavailable.
// Safe to call against an existing database.
func Open(ctx context.Context, opts Options) (*Store, error) {
	d, err := dialectFor(opts.Driver)
	if err != nil {
		return nil, err
	}

	dsn := opts.Path
	if d.driver == DriverPostgres {
		dsn = opts.DSN
	}
	if dsn == "" {
		return nil, fmt.Errorf("store %s: empty data source", d.driver)
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, unavailable("open database", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, unavailable("connect to database", err)
	}

	if d.driver == DriverSQLite {
		// SQLite only supports one writer at a time.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		if err := applyPragmas(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &Store{db: db, dialect: d}
	if err := s.applySchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer using Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Driver returns the normalized driver name.
func (s *Store) Driver() string {
	return s.dialect.driver
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM detections").Scan(&n); err != nil {
		return 0, unavailable("count detections", err)
	}
	return n, nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return unavailable(fmt.Sprintf("execute %q", pragma), err)
		}
	}
	return nil
}

func (s *Store) applySchema(ctx context.Context) error {
	for _, stmt := range s.dialect.statements() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return unavailable("apply schema", err)
		}
	}
	return nil
}

// unavailable wraps a driver error so callers can test for
// domain.ErrStorageUnavailable. Context cancellation is passed through as-is.
func unavailable(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, op, err)
}
