package cache

import "time"

// Record is the persisted cache record: an opaque value plus the instant it
// was written, serialized as JSON {"data": ..., "timestamp": ...}.
// The timestamp is milliseconds since the Unix epoch.
type Record[T any] struct {
	Data      T     `json:"data"`
	Timestamp int64 `json:"timestamp"`
}

// NewRecord creates a record stamped with the given write instant.
func NewRecord[T any](data T, now time.Time) Record[T] {
	return Record[T]{
		Data:      data,
		Timestamp: now.UnixMilli(),
	}
}

// WrittenAt returns the instant the record was written.
func (r Record[T]) WrittenAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// Age returns how long ago the record was written relative to now.
func (r Record[T]) Age(now time.Time) time.Duration {
	return now.Sub(r.WrittenAt())
}

// Expired reports whether the record has outlived ttl at the given instant.
// A record is valid iff its age is strictly less than the TTL.
func (r Record[T]) Expired(ttl time.Duration, now time.Time) bool {
	return r.Age(now) >= ttl
}
