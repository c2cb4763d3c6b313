package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/config"
)

// Collection keys, relative to the configured prefix.
const (
	keyUsers       = "users"
	keySystemTasks = "system_tasks"
	keyUserTasks   = "tasks_"
	keyWithdrawals = "withdrawals"
	keySession     = "session_uid"
)

// Repository exposes the record collections on top of a key-value Backend.
// Every write replaces one whole collection.
type Repository struct {
	kv     Backend
	prefix string

	// writeMu serializes read-modify-write sequences issued through Exclusive.
	writeMu sync.Mutex
}

// New opens the backend selected by cfg.Store.Driver.
func New(ctx context.Context, cfg *config.Config) (*Repository, error) {
	var (
		kv  Backend
		err error
	)
	switch cfg.Store.Driver {
	case config.DriverSQLite, "":
		kv, err = OpenSQLite(cfg.Store.SQLitePath)
	case config.DriverPostgres:
		kv, err = OpenPostgres(cfg.Database.DSN())
	case config.DriverRedis:
		kv, err = OpenRedis(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	case config.DriverMemory:
		kv = NewMemoryBackend()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	return NewWithBackend(kv, cfg.Store.KeyPrefix), nil
}

// NewWithBackend wraps an open backend. prefix namespaces every key.
func NewWithBackend(kv Backend, prefix string) *Repository {
	return &Repository{kv: kv, prefix: prefix}
}

func (r *Repository) Close() error {
	return r.kv.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.kv.Ping(ctx)
}

// Exclusive runs fn while holding the process-wide writer lock.
func (r *Repository) Exclusive(fn func() error) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	return fn()
}

func (r *Repository) key(name string) string {
	return r.prefix + name
}

// readJSON decodes the record stored at key into dst. It reports false when the
// key has never been written.
func (r *Repository) readJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, &StorageError{Op: "get", Key: key, Err: err}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, &StorageError{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

func (r *Repository) writeJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := r.kv.Set(ctx, key, raw); err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (r *Repository) readString(ctx context.Context, key string) (string, bool, error) {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, &StorageError{Op: "get", Key: key, Err: err}
	}
	return string(raw), true, nil
}

func (r *Repository) writeString(ctx context.Context, key, value string) error {
	if err := r.kv.Set(ctx, key, []byte(value)); err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (r *Repository) delete(ctx context.Context, key string) error {
	if err := r.kv.Delete(ctx, key); err != nil {
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}
