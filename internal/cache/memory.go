package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

const memoryProviderName = "memory"

func init() {
	Register(memoryProviderName, newMemoryCache)
}

// snapshotLRU keeps serialized snapshots in process memory. Entries expire
// after the configured TTL and the least recently read one is dropped once
// Size is reached.
type snapshotLRU struct {
	entries *lru.LRU[string, []byte]
}

func newMemoryCache(cfg ProviderConfig) (Cache, error) {
	// The underlying LRU treats 0 as unbounded.
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("cache: %s provider needs a positive size, got %d", memoryProviderName, cfg.Size)
	}
	if cfg.TTL < 0 {
		return nil, fmt.Errorf("cache: %s provider got negative ttl %s", memoryProviderName, cfg.TTL)
	}

	var evicted lru.EvictCallback[string, []byte]
	if notify := cfg.OnEvict; notify != nil {
		evicted = func(key string, value []byte) { notify(key, value) }
	}
	return &snapshotLRU{entries: lru.NewLRU(cfg.Size, evicted, cfg.TTL)}, nil
}

func (s *snapshotLRU) Get(key string) ([]byte, bool) {
	return s.entries.Get(key)
}

// Set stores a private copy so a caller reusing its buffer cannot change a
// cached snapshot, matching what the redis provider gives for free.
func (s *snapshotLRU) Set(key string, value []byte) {
	s.entries.Add(key, append([]byte(nil), value...))
}

func (s *snapshotLRU) Delete(key string) { s.entries.Remove(key) }

func (s *snapshotLRU) Contains(key string) bool { return s.entries.Contains(key) }

func (s *snapshotLRU) Len() int { return s.entries.Len() }

func (s *snapshotLRU) Close() error { return nil }
