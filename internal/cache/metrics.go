package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache metrics are labelled with the ProviderConfig Group.
var (
	HitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits.",
		},
		[]string{"cache"},
	)

	MissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses.",
		},
		[]string{"cache"},
	)

	EvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of entries evicted from the cache.",
		},
		[]string{"cache"},
	)

	// DeletesTotal counts explicit invalidations, e.g. of unreadable snapshots.
	DeletesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_deletes_total",
			Help: "Total number of entries deleted by the application.",
		},
		[]string{"cache"},
	)

	// StoredBytes tracks the size of written values. Library snapshots grow
	// with the number of recent movies, so this doubles as a library size signal.
	StoredBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_stored_bytes",
			Help:    "Size in bytes of values written to the cache.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(
		HitsTotal,
		MissesTotal,
		EvictionsTotal,
		DeletesTotal,
		StoredBytes,
	)
}

var (
	entriesMu     sync.Mutex
	entriesGauges = make(map[string]prometheus.GaugeFunc)
	// entriesReg is swapped for an isolated registry in tests.
	entriesReg prometheus.Registerer = prometheus.DefaultRegisterer
)

// trackEntries exposes cache_entries{cache=group}, read from lenFunc at
// scrape time so that backend-side expiry is reflected. A gauge already
// tracked for group is replaced.
func trackEntries(group string, lenFunc func() int) {
	gauge := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "cache_entries",
			Help:        "Current number of entries in the cache.",
			ConstLabels: prometheus.Labels{"cache": group},
		},
		func() float64 { return float64(lenFunc()) },
	)

	entriesMu.Lock()
	defer entriesMu.Unlock()

	if old, ok := entriesGauges[group]; ok {
		entriesReg.Unregister(old)
	}
	entriesGauges[group] = gauge
	_ = entriesReg.Register(gauge)
}

func untrackEntries(group string) {
	entriesMu.Lock()
	defer entriesMu.Unlock()

	if gauge, ok := entriesGauges[group]; ok {
		entriesReg.Unregister(gauge)
		delete(entriesGauges, group)
	}
}

func isTracked(group string) bool {
	entriesMu.Lock()
	defer entriesMu.Unlock()
	_, ok := entriesGauges[group]
	return ok
}
