// Package metrics provides Prometheus metrics for the matchtrack service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Custom registry to avoid the default Go collectors.
var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matchtrack",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by endpoint, method and status code.",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "matchtrack",
			Name:      "http_request_duration_ms",
			Help:      "HTTP request duration in milliseconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	mutationsPersisted = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matchtrack",
			Name:      "mutations_persisted_total",
			Help:      "Total persisted match mutations by operation.",
		},
		[]string{"operation"},
	)

	pageViews = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: "matchtrack",
			Name:      "page_views_total",
			Help:      "Total recorded page views.",
		},
	)
)

// GetRegistry returns the registry backing the /metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return registry
}

// RecordHTTPRequest counts one handled HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one request duration.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}

// RecordMutationPersisted counts one persisted match mutation.
func RecordMutationPersisted(operation string) {
	mutationsPersisted.WithLabelValues(operation).Inc()
}

// RecordPageView counts one page view.
func RecordPageView() {
	pageViews.Inc()
}
