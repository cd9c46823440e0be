package writer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder records writer-level metrics. Abstracting the recorder
// keeps the API adapters testable without a live Prometheus registry.
type MetricsRecorder interface {
	// RecordDuration records the wall time of a backend call.
	RecordDuration(backend string, duration time.Duration)

	// RecordMalformed increments the counter of schema-violating responses.
	RecordMalformed(backend string)

	// RecordContentLength records the length of a generated article body in bytes.
	RecordContentLength(length int)
}

// PrometheusMetrics is the production MetricsRecorder.
type PrometheusMetrics struct {
	durationHistogram *prometheus.HistogramVec
	malformedCounter  *prometheus.CounterVec
	lengthHistogram   prometheus.Histogram
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusMetrics creates the Prometheus-backed recorder. A process-wide
// singleton avoids duplicate metric registration in tests.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			durationHistogram: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "article_generation_duration_seconds",
				Help:    "Time taken to generate an article draft via the writer backend",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}, []string{"backend"}),
			malformedCounter: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "article_generation_malformed_total",
				Help: "Total number of writer responses rejected for schema violations",
			}, []string{"backend"}),
			lengthHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "article_generation_content_bytes",
				Help:    "Distribution of generated article body sizes in bytes",
				Buckets: []float64{500, 1000, 2000, 3000, 4000, 6000, 10000},
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordDuration implements MetricsRecorder.
func (p *PrometheusMetrics) RecordDuration(backend string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(backend).Observe(duration.Seconds())
}

// RecordMalformed implements MetricsRecorder.
func (p *PrometheusMetrics) RecordMalformed(backend string) {
	p.malformedCounter.WithLabelValues(backend).Inc()
}

// RecordContentLength implements MetricsRecorder.
func (p *PrometheusMetrics) RecordContentLength(length int) {
	p.lengthHistogram.Observe(float64(length))
}
