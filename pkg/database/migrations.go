package database

import (
	stdsql "database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// runViewMigrations applies the embedded SQL migrations that create objects
// Ent's auto-migration cannot express: the duplicate-group materialized view
// and its supporting pg_trgm indexes.
//
// Migration workflow:
//  1. Add numbered .up.sql/.down.sql files under pkg/database/migrations/
//  2. Files are embedded into the binary at compile time
//  3. Every binary applies pending migrations on startup (this function)
func runViewMigrations(db *stdsql.DB, cfg Config) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: "view_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, cfg.Database, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the migration source. m.Close() would also close the shared
	// *sql.DB passed via postgres.WithInstance, breaking the Ent client.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	return nil
}
