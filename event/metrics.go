package event

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics holds all Prometheus metrics for event registries.
// One instance is meant to be shared across registries; series are labeled
// by registry name.
type PrometheusMetrics struct {
	subscribes   *prometheus.CounterVec
	unsubscribes *prometheus.CounterVec
	invocations  *prometheus.CounterVec
	calls        *prometheus.CounterVec
	handlers     *prometheus.GaugeVec
}

// NewPrometheusMetrics creates and registers Prometheus metrics
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	m := &PrometheusMetrics{
		subscribes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_subscribes_total",
				Help:      "Number of handler subscriptions",
			},
			[]string{"event"},
		),
		unsubscribes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_unsubscribes_total",
				Help:      "Number of handlers removed",
			},
			[]string{"event"},
		),
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_invocations_total",
				Help:      "Number of event invocations",
			},
			[]string{"event"},
		),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_handler_calls_total",
				Help:      "Number of handler calls made by invocations",
			},
			[]string{"event"},
		),
		handlers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "event_handlers",
				Help:      "Number of currently subscribed handlers",
			},
			[]string{"event"},
		),
	}

	// Register all metrics
	prometheus.MustRegister(
		m.subscribes,
		m.unsubscribes,
		m.invocations,
		m.calls,
		m.handlers,
	)

	return m
}
