// Package storage provides the key/value and list persistence used for
// carts, saved calculations and placed orders.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("storage: key not found")
)

// Store is a best-effort key/value store with append-only lists.
// Writes are last-write-wins; there are no transactions.
type Store interface {
	// Get returns the value stored under key or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key. A zero ttl keeps the value until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Append adds value to the end of the list stored under key
	Append(ctx context.Context, key string, value []byte) error
	// List returns every value of the list under key, oldest first
	List(ctx context.Context, key string) ([][]byte, error)
	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error
	Close() error
}
