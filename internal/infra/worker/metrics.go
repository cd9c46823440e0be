package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"newsradar/internal/pkg/config"
)

// WorkerMetrics provides Prometheus metrics for the batch worker. It embeds
// the shared ConfigMetrics for configuration monitoring and adds batch
// execution tracking.
//
// Worker-specific metrics:
//   - worker_batch_runs_total: total batch runs by status (success/failure)
//   - worker_batch_duration_seconds: duration histogram of batch execution
//   - worker_articles_generated_total: articles generated across all runs
//   - worker_last_success_timestamp: Unix timestamp of the last successful run
type WorkerMetrics struct {
	*config.ConfigMetrics

	BatchRunsTotal         *prometheus.CounterVec
	BatchDurationSeconds   prometheus.Histogram
	ArticlesGeneratedTotal prometheus.Counter
	LastSuccessTimestamp   prometheus.Gauge
}

// NewWorkerMetrics creates and registers the worker metric set. Metrics are
// registered with the default registry via promauto, so this must be called
// at most once per process.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		BatchRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_batch_runs_total",
			Help: "Total number of generation batch runs by status (success/failure)",
		}, []string{"status"}),

		BatchDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_batch_duration_seconds",
			Help:    "Duration of generation batch execution in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),

		ArticlesGeneratedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_articles_generated_total",
			Help: "Total number of articles generated across all batch runs",
		}),

		LastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_last_success_timestamp",
			Help: "Unix timestamp of the last successful batch run",
		}),
	}
}

// RecordBatchRun increments the batch run counter. Status is "success" or
// "failure".
func (m *WorkerMetrics) RecordBatchRun(status string) {
	m.BatchRunsTotal.WithLabelValues(status).Inc()
}

// RecordBatchDuration observes the duration of one batch run in seconds.
func (m *WorkerMetrics) RecordBatchDuration(seconds float64) {
	m.BatchDurationSeconds.Observe(seconds)
}

// RecordArticlesGenerated adds the number of articles produced by one run.
func (m *WorkerMetrics) RecordArticlesGenerated(count int) {
	m.ArticlesGeneratedTotal.Add(float64(count))
}

// RecordLastSuccess stamps the last successful run gauge with the current time.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.LastSuccessTimestamp.SetToCurrentTime()
}
