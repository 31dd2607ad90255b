package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // register file source driver
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// newMigrator opens a migrate instance over a pgx stdlib connection.
// migrationsPath uses the file source syntax, e.g. "file://./migrations".
// The returned cleanup closes the underlying database handle.
func newMigrator(databaseURL, migrationsPath string) (*migrate.Migrate, func(), error) {
	connConfig, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Same CA handling as the main connection pool
	tlsConfig, err := configureTLS(databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to configure TLS: %w", err)
	}
	if tlsConfig != nil {
		connConfig.TLSConfig = tlsConfig
	}

	db := stdlib.OpenDB(*connConfig)

	if pingErr := db.Ping(); pingErr != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationsPath,
		"postgres",
		driver,
	)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return m, func() { db.Close() }, nil
}

// RunMigrations applies all pending migrations.
// ErrNoChange (already up to date) is not an error.
func RunMigrations(databaseURL, migrationsPath string) error {
	m, cleanup, err := newMigrator(databaseURL, migrationsPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// RollbackMigration reverts the most recently applied migration
func RollbackMigration(databaseURL, migrationsPath string) error {
	m, cleanup, err := newMigrator(databaseURL, migrationsPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	return nil
}

// MigrationVersion reports the current schema version and whether the last
// migration left the schema dirty. A fresh database reports version 0.
func MigrationVersion(databaseURL, migrationsPath string) (uint, bool, error) {
	m, cleanup, err := newMigrator(databaseURL, migrationsPath)
	if err != nil {
		return 0, false, err
	}
	defer cleanup()

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}

	return version, dirty, nil
}
