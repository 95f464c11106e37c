package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ProviderConfig configures a cache backend. Fields a backend does not use
// are ignored.
type ProviderConfig struct {
	Size    int           // maximum entries (memory)
	TTL     time.Duration // per-entry expiry
	OnEvict EvictCallback // memory only
	Logger  Logger        // receives backend errors; nil drops them

	// KeyPrefix namespaces keys in shared backends. Defaults to "newreleases:".
	KeyPrefix string

	RedisAddress  string // host:port of the Redis/Valkey server
	RedisPassword string
	RedisDB       int

	// Group labels the cache_* Prometheus metrics. Empty disables them.
	Group string
}

// Provider is a constructor function that creates a Cache from config.
type Provider func(cfg ProviderConfig) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register registers a cache provider under the given name.
// It panics if the name is already registered or the provider is nil.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New creates a cache with the named provider. A non-empty cfg.Group wraps
// it with the cache_* metrics.
func New(name string, cfg ProviderConfig) (Cache, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	if cfg.Group == "" {
		return p(cfg)
	}
	return instrument(p, cfg)
}

// RegisteredProviders returns a sorted list of registered provider names.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
