package kv

import "context"

// Store is a durable local key-value store. It is the process-local stand-in
// for a browser session's persistent storage: a handful of well-known keys,
// each holding one serialized document.
type Store interface {
	// Get returns the value stored under key. A key that was never written
	// (or was deleted) yields *errors.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
