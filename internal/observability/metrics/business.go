package metrics

import (
	"time"

	"newsradar/internal/domain/entity"
)

// Outcome status labels used by the pipeline recorders.
const (
	StatusGenerated = "generated"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// RecordArticleGenerated records one pipeline outcome for a category.
// Status must be one of StatusGenerated, StatusSkipped, StatusFailed.
func RecordArticleGenerated(category entity.Category, status string) {
	ArticlesGeneratedTotal.WithLabelValues(category.String(), status).Inc()
}

// RecordGenerationDuration records the end-to-end time of one category run.
func RecordGenerationDuration(category entity.Category, duration time.Duration) {
	GenerationDuration.WithLabelValues(category.String()).Observe(duration.Seconds())
}

// RecordHeadlinesFetched records the number of headlines obtained for a category.
func RecordHeadlinesFetched(category entity.Category, count int) {
	HeadlinesFetchedTotal.WithLabelValues(category.String()).Add(float64(count))
}

// RecordImageFallback records an article saved with the placeholder cover.
func RecordImageFallback(category entity.Category) {
	ImageFallbackTotal.WithLabelValues(category.String()).Inc()
}

// RecordBatchRun records the result of a scheduled batch run.
// Result should be "completed" or "aborted".
func RecordBatchRun(result string) {
	BatchRunsTotal.WithLabelValues(result).Inc()
}

// UpdateArticlesTotal updates the total count of articles in the store.
// This gauge should be updated periodically to reflect the current state.
func UpdateArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_articles", "insert_article").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
