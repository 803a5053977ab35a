// Package storage provides the persisted key-value slot the session list
// lives in, with file, SQLite and in-memory backends.
package storage

import "context"

// Slot is a named key-value slot. Values are opaque strings; the session
// store keeps a JSON-encoded array in a single key.
type Slot interface {
	// Get returns the value stored under key, or ErrNotFound if the key
	// has never been written.
	Get(ctx context.Context, key string) (string, error)
	// Set overwrites the value stored under key in a single write.
	Set(ctx context.Context, key, value string) error
}
