package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/minapp/profilecache/internal/store"
)

// DefaultKey is the fixed storage key the cache writes its one record under.
const DefaultKey = "user_profile"

// FetchFunc retrieves a fresh value from the authoritative source.
// It is invoked on a cache miss or a forced refresh.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Single is a single-entry expiring cache: at most one record exists at a
// time, under one fixed key. Writing replaces the record; a read that finds
// an expired record evicts it and reports absence.
//
// Construct one instance per process and pass it to callers by reference.
type Single[T any] struct {
	store store.Store
	fetch FetchFunc[T]
	key   string
	ttl   time.Duration
	now   func() time.Time
	log   zerolog.Logger
}

// Option configures a Single cache.
type Option[T any] func(*Single[T])

// WithKey overrides the fixed storage key.
func WithKey[T any](key string) Option[T] {
	return func(c *Single[T]) { c.key = key }
}

// WithTTL overrides the record time-to-live.
func WithTTL[T any](ttl time.Duration) Option[T] {
	return func(c *Single[T]) { c.ttl = ttl }
}

// WithClock overrides the time source. Used by tests to control expiry.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *Single[T]) { c.now = now }
}

// WithLogger sets the diagnostic sink for absorbed failures.
func WithLogger[T any](log zerolog.Logger) Option[T] {
	return func(c *Single[T]) { c.log = log }
}

// NewSingle creates a single-entry cache over the given store and fetch
// collaborator, with DefaultKey and DefaultTTL unless overridden.
func NewSingle[T any](st store.Store, fetch FetchFunc[T], opts ...Option[T]) *Single[T] {
	c := &Single[T]{
		store: st,
		fetch: fetch,
		key:   DefaultKey,
		ttl:   DefaultTTL,
		now:   time.Now,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value when it is still fresh, otherwise fetches a
// new one. With force set, a valid cached value is bypassed and the source is
// always consulted.
//
// The second return value reports presence. Get never returns an error: a
// failed fetch is reported to the diagnostic sink and yields absence, so
// callers only ever see a value or nothing.
func (c *Single[T]) Get(ctx context.Context, force bool) (T, bool) {
	if !force {
		if v, ok := c.readCached(); ok {
			return v, true
		}
	}

	v, err := c.fetch(ctx)
	if err != nil {
		c.reportError("fetch", err)
		var zero T
		return zero, false
	}

	c.write(v)
	return v, true
}

// Cached returns the stored record without consulting the source and without
// evicting. The record is returned regardless of freshness so callers can
// inspect its age; use Get for validated reads.
func (c *Single[T]) Cached() (Record[T], bool) {
	var rec Record[T]

	raw, err := c.store.Read(c.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.reportError("read", err)
		}
		return rec, false
	}

	if err := json.Unmarshal(raw, &rec); err != nil {
		c.reportError("decode", err)
		return Record[T]{}, false
	}

	return rec, true
}

// Evict removes the stored record. A storage failure is logged and ignored;
// the record may then remain on disk until the next successful write.
func (c *Single[T]) Evict() {
	if err := c.store.Remove(c.key); err != nil {
		c.reportError("evict", err)
	}
}

// TTL returns the configured record time-to-live.
func (c *Single[T]) TTL() time.Duration {
	return c.ttl
}

// Key returns the fixed storage key.
func (c *Single[T]) Key() string {
	return c.key
}

// readCached loads and validates the stored record. A missing, unreadable or
// unparseable record is a miss (fail-open); an expired record is evicted
// before the miss is reported.
func (c *Single[T]) readCached() (T, bool) {
	var zero T

	raw, err := c.store.Read(c.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.reportError("read", err)
		}
		return zero, false
	}

	var rec Record[T]
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Corrupt data behaves exactly like an absent record.
		c.reportError("decode", err)
		return zero, false
	}

	if rec.Expired(c.ttl, c.now()) {
		c.Evict()
		return zero, false
	}

	return rec.Data, true
}

// write persists the value under the fixed key with the current timestamp.
// Failures are logged and ignored; the cache simply stays unset.
func (c *Single[T]) write(v T) {
	raw, err := json.Marshal(NewRecord(v, c.now()))
	if err != nil {
		c.reportError("encode", err)
		return
	}

	if err := c.store.Write(c.key, raw); err != nil {
		c.reportError("write", err)
	}
}

// reportError sends an absorbed failure to the diagnostic sink. It never
// returns an error and never panics.
func (c *Single[T]) reportError(action string, err error) {
	c.log.Error().
		Str("action", action).
		Str("key", c.key).
		Err(err).
		Msg("profile cache operation failed")
}
