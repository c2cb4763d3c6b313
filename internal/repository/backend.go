package repository

import (
	"context"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by a Backend when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Backend is a durable key-value store holding one serialized collection per key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// StorageError reports a failed read, write or decode of a persisted record.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
