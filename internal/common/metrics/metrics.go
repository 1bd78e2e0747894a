// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of search requests by mode",
		},
		[]string{"mode"}, // ai, manual, combined, unfiltered
	)

	InterpreterFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_interpreter_failures_total",
			Help: "Total number of failed free-text interpretation calls",
		},
		[]string{"error_code"},
	)

	ClarificationsRequested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_clarifications_requested_total",
			Help: "Total number of searches where the interpreter asked for clarification",
		},
	)

	InterpretationCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_interpretation_cache_total",
			Help: "Interpretation cache lookups by outcome",
		},
		[]string{"outcome"}, // hit, miss, error
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "search_duration_seconds",
			Help: "Duration of search request processing in seconds",
		},
		[]string{"mode"},
	)

	SearchResultCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_result_count",
			Help:    "Number of shops retained per search",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
	)
)
