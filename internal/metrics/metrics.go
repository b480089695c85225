// Package metrics exposes prometheus instrumentation for the store and the
// HTTP surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// StoreOps counts store operations by record kind and operation.
	StoreOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitekeeper_store_operations_total",
		Help: "Store operations by record kind and operation.",
	}, []string{"kind", "op"})

	// HTTPRequests observes HTTP request latency by method, route and status.
	HTTPRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sitekeeper_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Handler returns the /metrics scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
