package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLBackend stores each key as one row of the kv_store table.
type SQLBackend struct {
	db *sqlx.DB
}

var _ Backend = (*SQLBackend)(nil)

// OpenPostgres applies pending migrations over a dedicated connection, then
// opens the working pool through pgx.
func OpenPostgres(dsn string) (*SQLBackend, error) {
	mdb, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	m, err := NewMigrator(mdb)
	if err != nil {
		mdb.Close()
		return nil, err
	}
	upErr := m.Up()
	m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return nil, fmt.Errorf("failed to run migrations: %w", upErr)
	}

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return &SQLBackend{db: db}, nil
}

// OpenSQLite opens (or creates) a SQLite database file and applies pending migrations.
func OpenSQLite(path string) (*SQLBackend, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLBackend{db: db}, nil
}

// NewSQLBackend wraps an already migrated connection.
func NewSQLBackend(db *sqlx.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := b.db.GetContext(ctx, &value, b.db.Rebind("SELECT value FROM kv_store WHERE key = ?"), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (b *SQLBackend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx, b.db.Rebind(`
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`), key, string(value))
	return err
}

func (b *SQLBackend) Delete(ctx context.Context, key string) error {
	_, err := b.db.ExecContext(ctx, b.db.Rebind("DELETE FROM kv_store WHERE key = ?"), key)
	return err
}

func (b *SQLBackend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}

func (b *SQLBackend) DB() *sqlx.DB {
	return b.db
}
