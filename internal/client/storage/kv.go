// Package storage implements the flat key-value store the credential and
// task stores persist into. The durable implementation is a single sqlite
// table; an in-memory implementation backs tests and ephemeral runs.
package storage

import "context"

// Keys of the persisted state layout. The shape of each value is owned by
// the service writing it.
const (
	KeyUsers        = "users"
	KeyLoggedInUser = "loggedInUserEmail"
	KeyLoggedInName = "loggedInUser_name"
	KeyTodos        = "todos"
)

// KVStore is the contract over a persistent, string-keyed, string-valued
// store. A missing key yields ("", nil), never an error, so callers can
// treat absent and unreadable state identically.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Batcher is implemented by stores that can apply several operations
// atomically. Callers fall back to sequential operations when the store
// does not support batching.
type Batcher interface {
	Batch(ctx context.Context, fn func(ctx context.Context, s KVStore) error) error
}
