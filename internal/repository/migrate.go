package repository

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// NewMigrator builds a migrate instance for the connection's driver. Closing the
// returned instance also closes db.
func NewMigrator(db *sqlx.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	var (
		driver database.Driver
		name   string
	)
	switch db.DriverName() {
	case "sqlite3":
		name = "sqlite3"
		driver, err = sqlitemigrate.WithInstance(db.DB, &sqlitemigrate.Config{})
	case "pgx":
		name = "pgx5"
		driver, err = pgxmigrate.WithInstance(db.DB, &pgxmigrate.Config{})
	default:
		return nil, fmt.Errorf("migrations not supported for driver %q", db.DriverName())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to init migration driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", source, name, driver)
}

// Migrate applies all pending migrations on db. The migrate instance is not
// closed so db stays usable.
func Migrate(db *sqlx.DB) error {
	m, err := NewMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
