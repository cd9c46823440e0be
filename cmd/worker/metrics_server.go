package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsradar/internal/pkg/config"
)

const defaultMetricsPort = 9090

// startMetricsServer runs the Prometheus scrape endpoint in the background
// and shuts it down when ctx is cancelled.
//
// Endpoints:
//   - GET /metrics: Prometheus scrape target
//   - GET /health: simple liveness probe
//
// METRICS_PORT selects the listen port, defaulting to 9090.
func startMetricsServer(ctx context.Context, logger *slog.Logger) *http.Server {
	port := metricsPort(logger)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", slog.Int("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", slog.Any("error", err))
			return
		}
		logger.Info("metrics server stopped")
	}()

	return server
}

// metricsPort reads METRICS_PORT, falling back to the default on absent or
// out-of-range values.
func metricsPort(logger *slog.Logger) int {
	result := config.LoadEnvInt("METRICS_PORT", defaultMetricsPort, func(p int) error {
		if p <= 0 || p > 65535 {
			return fmt.Errorf("port out of range")
		}
		return nil
	})
	for _, warning := range result.Warnings {
		logger.Warn("metrics port setting rejected", slog.String("detail", warning))
	}
	return result.Value.(int)
}
