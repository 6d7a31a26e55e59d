// Package metrics defines the Prometheus collectors of the blog API.
// All collectors are registered with the default registry on import.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// Reasons for AuthFailuresTotal.
const (
	ReasonMissingHeader      = "missing_header"
	ReasonMalformedHeader    = "malformed_header"
	ReasonInvalidToken       = "invalid_token"
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonForbidden          = "forbidden"
)

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP method
//   - route: matched route pattern (e.g. "/articles/:id"), or "unmatched"
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency by method and route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests from routing to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// AuthFailuresTotal counts rejected authentication and admin checks.
// Label:
//   - reason: one of the Reason* constants
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected logins, tokens and admin checks.",
	},
	[]string{"reason"},
)

// RegistrationsTotal counts successfully registered accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered user accounts.",
	},
)

// ObserveRequest records one finished request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// AuthFailure increments AuthFailuresTotal for reason.
func AuthFailure(reason string) {
	AuthFailuresTotal.WithLabelValues(reason).Inc()
}
