// Package cache stores serialized library snapshots so that a listing and the
// media-info lookups that follow it do not each hit the media server.
package cache

// EvictCallback is called when an entry is evicted from the cache.
// Redis relies on server-side expiry and never invokes it.
type EvictCallback func(key string, value []byte)

// Logger receives errors from backends whose operations can fail at runtime.
type Logger interface {
	Error(msg string, err error)
}

// Cache is a byte-valued key/value store with bounded size and per-entry TTL.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string)

	// Contains reports whether key is present without refreshing it.
	Contains(key string) bool

	// Len returns the number of live entries.
	Len() int

	// Close releases network connections. In-memory caches return nil.
	Close() error
}
