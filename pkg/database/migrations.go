package database

import (
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// runMigrations applies the embedded SQL migrations. These cover what
// the ent schema DSL cannot express: the FTS5 virtual table over tool
// call output text and the triggers that keep it in sync.
func runMigrations(db *stdsql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "warden", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the
	// database driver, which closes the shared *sql.DB under the ent
	// client.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	return nil
}

// SearchToolCalls runs a full-text query over tool call output text and
// returns matching tool_run_ids, best match first. A missing FTS table
// (fresh database, migrations not yet applied) yields an empty result.
func SearchToolCalls(db *stdsql.DB, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(
		`SELECT tool_run_id FROM tool_calls_fts WHERE tool_calls_fts MATCH ? ORDER BY rank LIMIT ?`,
		query, limit,
	)
	if err != nil {
		if IsMissingSchema(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("fts scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
