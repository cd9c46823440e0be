// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
}

func histogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return promauto.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, labels)
}

func gauge(name, help string) prometheus.Gauge {
	return promauto.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
}

// HTTP surface.
var (
	HTTPRequestsTotal = counterVec("http_requests_total",
		"Total number of HTTP requests",
		"method", "path", "status")

	HTTPRequestDuration = histogramVec("http_request_duration_seconds",
		"HTTP request duration in seconds",
		prometheus.DefBuckets,
		"method", "path", "status")

	HTTPResponseSize = histogramVec("http_response_size_bytes",
		"HTTP response size in bytes",
		prometheus.ExponentialBuckets(100, 10, 8),
		"method", "path")

	ActiveConnections = gauge("http_active_connections",
		"Number of active HTTP connections")
)

// Generation pipeline.
var (
	ArticlesTotal = gauge("articles_total",
		"Total number of articles in the store")

	// status: generated, skipped, failed
	ArticlesGeneratedTotal = counterVec("articles_generated_total",
		"Total number of pipeline runs by outcome",
		"category", "status")

	GenerationDuration = histogramVec("generation_duration_seconds",
		"End-to-end time to generate an article for a category",
		prometheus.ExponentialBuckets(0.5, 2, 10),
		"category")

	HeadlinesFetchedTotal = counterVec("headlines_fetched_total",
		"Total number of headlines fetched from the news feed",
		"category")

	ImageFallbackTotal = counterVec("image_fallback_total",
		"Total number of articles saved with the placeholder cover image",
		"category")

	// result: completed, aborted
	BatchRunsTotal = counterVec("batch_runs_total",
		"Total number of batch generation runs",
		"result")
)

// Database.
var (
	DBQueryDuration = histogramVec("db_query_duration_seconds",
		"Database query duration in seconds",
		prometheus.ExponentialBuckets(0.001, 2, 10),
		"operation")

	DBConnectionsActive = gauge("db_connections_active",
		"Number of active database connections")

	DBConnectionsIdle = gauge("db_connections_idle",
		"Number of idle database connections")
)

// RecordHTTPRequest records one completed request. Zero response sizes are
// skipped so HEAD requests and empty bodies do not skew the histogram.
func RecordHTTPRequest(method, path, status string, duration time.Duration, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
