package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// result: success | failure
var authRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "auth_requests_total",
	Help: "Total authentication requests by result",
}, []string{"result"})

var authDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "auth_duration_seconds",
	Help:    "Authentication duration",
	Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
})

var authzCheckDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "authz_check_duration_seconds",
	Help:    "Authorization check duration",
	Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
})

var forbiddenAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "forbidden_attempts_total",
	Help: "Forbidden access attempts by role and method",
}, []string{"role", "method"})

// RecordAuthRequest counts one token issue attempt by result.
func RecordAuthRequest(result string) {
	authRequestsTotal.WithLabelValues(result).Inc()
}

// RecordAuthDuration observes how long the token endpoint took.
func RecordAuthDuration(durationSeconds float64) {
	authDuration.Observe(durationSeconds)
}

// RecordAuthzCheckDuration observes how long a middleware role check took.
func RecordAuthzCheckDuration(durationSeconds float64) {
	authzCheckDuration.Observe(durationSeconds)
}

// RecordForbiddenAttempt counts a role that was rejected by authorization.
func RecordForbiddenAttempt(role, method string) {
	forbiddenAttempts.WithLabelValues(role, method).Inc()
}
