package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Full-document store writes
	StoreWriteCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_write_count",
			Help: "Total number of whole-collection writes to the flat-file store",
		},
		[]string{"collection"},
	)

	// Rejected requests at the auth gate
	AuthFailureCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failure_count",
			Help: "Total number of requests rejected by the auth middleware",
		},
		[]string{"reason"}, // reason: missing_token, invalid_token
	)

	// Task mutations by operation
	TaskMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_mutation_count",
			Help: "Total number of task mutations",
		},
		[]string{"operation"}, // operation: create, update, progress, soft_delete
	)
)

// RecordHTTPRequestDuration records one served request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncStoreWrite counts a whole-collection write.
func IncStoreWrite(collection string) {
	StoreWriteCount.WithLabelValues(collection).Inc()
}

// IncAuthFailure counts a rejected request.
func IncAuthFailure(reason string) {
	AuthFailureCount.WithLabelValues(reason).Inc()
}

// IncTaskMutation counts a task mutation.
func IncTaskMutation(operation string) {
	TaskMutationCount.WithLabelValues(operation).Inc()
}
