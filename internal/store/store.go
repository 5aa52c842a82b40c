// Package store provides the key-value storage collaborators backing the
// profile cache. Stores are deliberately dumb: they move raw bytes under
// string keys and know nothing about record layout or expiration, which
// belong to the cache layer.
package store

import "errors"

// Common store errors.
var (
	// ErrNotFound is returned by Read when no value exists under the key.
	ErrNotFound = errors.New("store: key not found")

	// ErrInvalidKey is returned when an empty key is used.
	ErrInvalidKey = errors.New("store: key cannot be empty")
)

// Store is a minimal synchronous key-value storage surface.
// All operations return fallible results rather than panicking so that
// failure handling stays explicit at the call site.
type Store interface {
	// Read returns the raw value stored under key, or ErrNotFound.
	Read(key string) ([]byte, error)

	// Write stores value under key, replacing any existing value.
	Write(key string, value []byte) error

	// Remove deletes the value under key. Removing a missing key is not
	// an error (idempotent).
	Remove(key string) error
}
