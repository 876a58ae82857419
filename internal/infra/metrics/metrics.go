// Package metrics holds the Prometheus collectors exposed on the metrics endpoint.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// httpRequestsTotal counts requests by method, route template and status.
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homesec_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homesec_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// authAttemptsTotal counts logins by result (success, invalid_credentials, error).
	authAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homesec_auth_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	tokenRevocationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "homesec_token_revocations_total",
			Help: "Total number of logouts that revoked a token",
		},
	)

	// mailDeliveriesTotal counts mail handoffs by provider, category and result.
	mailDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homesec_mail_deliveries_total",
			Help: "Total number of transactional email deliveries",
		},
		[]string{"provider", "category", "result"},
	)

	// dualWriteCompensationsTotal counts parent updates that failed after the
	// child document was written, by entity and whether the rollback succeeded.
	dualWriteCompensationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homesec_dual_write_compensations_total",
			Help: "Total number of compensated partial writes",
		},
		[]string{"entity", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		authAttemptsTotal,
		tokenRevocationsTotal,
		mailDeliveriesTotal,
		dualWriteCompensationsTotal,
	)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// IncrementAuthAttempts records a login outcome.
func IncrementAuthAttempts(result string) {
	authAttemptsTotal.WithLabelValues(result).Inc()
}

// IncrementTokenRevocations records a logout.
func IncrementTokenRevocations() {
	tokenRevocationsTotal.Inc()
}

// IncrementMailDeliveries records a mail handoff.
func IncrementMailDeliveries(provider, category string, err error) {
	mailDeliveriesTotal.WithLabelValues(provider, category, result(err)).Inc()
}

// IncrementCompensations records a rollback of a partial write.
func IncrementCompensations(entity string, err error) {
	dualWriteCompensationsTotal.WithLabelValues(entity, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}

	return "success"
}
