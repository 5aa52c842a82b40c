package store

import (
	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps values in process memory only. Nothing survives a
// restart, which makes it the right backend when persistent caching is
// disabled but callers still want request-scoped reuse.
type MemoryStore struct {
	cache *gocache.Cache
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory store.
// Entries never expire at this layer; expiration is owned by the cache
// on top, which stamps and checks its own records.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Read returns the value stored under key, or ErrNotFound.
func (s *MemoryStore) Read(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	value, found := s.cache.Get(key)
	if !found {
		return nil, ErrNotFound
	}
	return value.([]byte), nil
}

// Write stores value under key, replacing any existing value.
func (s *MemoryStore) Write(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.cache.Set(key, value, gocache.NoExpiration)
	return nil
}

// Remove deletes the value under key. Removing a missing key is a no-op.
func (s *MemoryStore) Remove(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.cache.Delete(key)
	return nil
}
