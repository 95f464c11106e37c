package cache

// instrumentedCache records cache_* metrics for every operation on inner
type instrumentedCache struct {
	inner Cache
	group string
}

// instrument builds a cache with p and wraps it with metrics for cfg.Group.
// Evictions are counted by chaining cfg.OnEvict.
func instrument(p Provider, cfg ProviderConfig) (Cache, error) {
	group := cfg.Group
	next := cfg.OnEvict
	cfg.OnEvict = func(key string, value []byte) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if next != nil {
			next(key, value)
		}
	}

	inner, err := p(cfg)
	if err != nil {
		return nil, err
	}

	trackEntries(group, inner.Len)
	return &instrumentedCache{inner: inner, group: group}, nil
}

func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		HitsTotal.WithLabelValues(c.group).Inc()
	} else {
		MissesTotal.WithLabelValues(c.group).Inc()
	}
	return val, ok
}

func (c *instrumentedCache) Set(key string, value []byte) {
	StoredBytes.WithLabelValues(c.group).Observe(float64(len(value)))
	c.inner.Set(key, value)
}

func (c *instrumentedCache) Delete(key string) {
	DeletesTotal.WithLabelValues(c.group).Inc()
	c.inner.Delete(key)
}

func (c *instrumentedCache) Contains(key string) bool {
	return c.inner.Contains(key)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

// Close stops exporting cache_entries and closes inner.
func (c *instrumentedCache) Close() error {
	untrackEntries(c.group)
	return c.inner.Close()
}
