// Package database provides the embedded SQLite store client and
// migration utilities. The store is a single file with WAL journaling;
// all warden persistence goes through it.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"net/url"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/mattn/go-sqlite3" // Register sqlite3 driver for database/sql

	"github.com/codeready-toolchain/warden/ent"
)

// Client wraps the ent client and provides access to the underlying
// database handle for health checks and raw queries (FTS).
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB returns the underlying database connection.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an existing ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{
		Client: entClient,
		db:     db,
	}
}

// NewClient opens the store, applies schema and migrations, and returns
// a ready client. Schema initialization is idempotent: reopening an
// existing file is a no-op, a fresh path gets the full schema.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("sqlite3", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows exactly one writer; WAL gives readers snapshot
	// isolation without blocking it. A second connection would trade
	// SQLITE_BUSY errors for the busy_timeout, so the pool is kept at one.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Idempotent schema init: ent creates/extends tables, then the
	// embedded migrations add what the schema DSL cannot express (FTS5).
	if err := entClient.Schema.Create(ctx); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := runMigrations(db); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{
		Client: entClient,
		db:     db,
	}, nil
}

// Config holds store configuration.
type Config struct {
	// Path is the database file path, or ":memory:" for tests.
	Path string

	// BusyTimeoutMS bounds how long a writer waits on the WAL lock.
	BusyTimeoutMS int
}

// DSN builds the sqlite3 connection string with WAL journaling and
// foreign keys enabled.
func (c Config) DSN() string {
	busy := c.BusyTimeoutMS
	if busy <= 0 {
		busy = 5000
	}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", fmt.Sprintf("%d", busy))
	q.Set("_fk", "1")
	return fmt.Sprintf("file:%s?%s", c.Path, q.Encode())
}
