// Package cache implements a single-entry expiring cache for values fetched
// from an external source.
//
// The cache owns exactly one record under one fixed key. Reads return the
// cached value while it is younger than the TTL; an expired record is evicted
// before being treated as absent, so stale data is never returned. On a miss
// (or a forced refresh) the value is re-fetched from the source and written
// through on success.
//
// Every storage and fetch failure is absorbed here: it is logged and the read
// degrades to "no value", never an error at the public boundary. Concurrent
// reads around a miss may each issue their own fetch; no single-flight
// coordination is provided.
package cache
