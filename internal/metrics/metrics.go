package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Aggregation metrics
var (
	AggregationRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregation_runs_total",
			Help: "Total number of release aggregations.",
		},
		[]string{"status"},
	)

	AggregationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Time spent folding library items into release records.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
	)

	ReleaseRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "release_records",
			Help: "Number of release records produced by the last aggregation.",
		},
	)

	ItemsSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregation_items_skipped_total",
			Help: "Library items skipped because they have no file path.",
		},
	)

	SourcesDeduplicatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregation_sources_deduplicated_total",
			Help: "Media sources dropped because their path was already present in the record.",
		},
	)
)

// Media server metrics
var (
	LibraryRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_requests_total",
			Help: "Total number of requests sent to the media server.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		AggregationRunsTotal,
		AggregationDuration,
		ReleaseRecords,
		ItemsSkippedTotal,
		SourcesDeduplicatedTotal,
		LibraryRequestsTotal,
	)
}
