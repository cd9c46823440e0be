// Package http provides HTTP handlers and middleware for the API server.
// It includes article handlers, generation endpoints, health checks,
// metrics collection, and various middleware components.
package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"newsradar/internal/observability/metrics"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// Pool utilization at or above this share of max connections marks the
// database check degraded.
const poolUtilizationWarnPercent = 80.0

// HealthResponse is the body of the /health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus reports one named health check.
type CheckStatus struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthHandler serves the aggregated health report. With the postgres
// backend it pings the database and inspects the connection pool; with the
// file backend DB is nil and the storage check only names the backend.
type HealthHandler struct {
	DB             *sql.DB
	StorageBackend string
	Version        string
}

// ServeHTTP runs all checks and responds 200 when every check passes or is
// merely degraded, 503 when any check is unhealthy.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := h.runChecks(ctx)

	overall, code := statusHealthy, http.StatusOK
	for _, c := range checks {
		if c.Status == statusUnhealthy {
			overall, code = statusUnhealthy, http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
	if err != nil {
		slog.Warn("health response encode failed", slog.Any("error", err))
	}
}

func (h *HealthHandler) runChecks(ctx context.Context) map[string]CheckStatus {
	if h.DB == nil {
		return map[string]CheckStatus{
			"storage": {Status: statusHealthy, Message: h.StorageBackend},
		}
	}
	return map[string]CheckStatus{"database": h.checkDatabase(ctx)}
}

// checkDatabase pings the database and grades the connection pool.
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: statusUnhealthy, Message: err.Error()}
	}

	stats := h.DB.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
	details := poolDetails(stats)

	// Zero max connections means unlimited, so utilization is undefined.
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= poolUtilizationWarnPercent {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}

	return CheckStatus{Status: statusHealthy, Details: details}
}

func poolDetails(stats sql.DBStats) map[string]interface{} {
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}
}

// ReadyHandler answers readiness probes. With the postgres backend it
// requires a successful ping; with the file backend it is always ready.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			http.Error(w, "database not ready: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
	}
	writeProbe(w, "ready")
}

// LiveHandler answers liveness probes.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, "alive")
}

func writeProbe(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Warn("probe response write failed", slog.Any("error", err))
	}
}
