// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds *prometheus.HistogramVec

	// Resolver metrics
	ResolverLookupsTotal *prometheus.CounterVec
	FollowUpsTotal       *prometheus.CounterVec

	// Session metrics
	ActiveSessions prometheus.Gauge

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec

	// Dataset metrics
	DatasetSize *prometheus.GaugeVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "htu_chat_requests_total",
				Help: "Total number of chat turns by intent and status",
			},
			[]string{"intent", "status"}, // status: resolved, ambiguous, no_match, static
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "htu_chat_duration_seconds",
				Help:    "Chat turn processing duration in seconds by intent",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}, // In-memory matching, sub-ms expected
			},
			[]string{"intent"},
		),

		ResolverLookupsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "htu_resolver_lookups_total",
				Help: "Total resolver lookups by module and outcome",
			},
			[]string{"module", "outcome"}, // module: subject, professor, study_plan; outcome: exact, contains, fuzzy, multiple, none
		),

		FollowUpsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "htu_followups_total",
				Help: "Total follow-up questions answered by kind",
			},
			[]string{"kind"}, // kind: school, email, office, schedule, colleagues
		),

		ActiveSessions: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "htu_active_sessions",
				Help: "Number of live conversation sessions",
			},
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "htu_ratelimit_dropped_total",
				Help: "Total requests dropped by rate limiting, by scope",
			},
			[]string{"scope"}, // scope: per_ip, global
		),

		DatasetSize: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "htu_dataset_size",
				Help: "Loaded dataset entry counts",
			},
			[]string{"dataset"}, // dataset: courses, majors, professors
		),
	}
}
