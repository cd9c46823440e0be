// Package observability groups the logging, metrics, and tracing
// infrastructure shared by the API server and the batch worker.
//
// Subpackages:
//   - logging: slog construction and context propagation
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry HTTP tracing middleware
package observability
