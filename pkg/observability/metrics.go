// Package observability provides a LifecycleHooks implementation backed by
// Prometheus collectors, so tick and contingency activity can be scraped
// from the introspection server.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/copse/pkg/domain"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	ticks         *prometheus.CounterVec
	contingencies *prometheus.CounterVec
	bindWarnings  prometheus.Counter
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "copse",
			Name:      "node_ticks_total",
			Help:      "Number of ticks dispatched, by node type.",
		}, []string{"node"}),
		contingencies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "copse",
			Name:      "contingency_reactions_total",
			Help:      "Number of contingency reactions fired, by node type.",
		}, []string{"node"}),
		bindWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "copse",
			Name:      "bind_warnings_total",
			Help:      "Number of non-fatal parameter binding warnings.",
		}),
	}
	reg.MustRegister(m.ticks, m.contingencies, m.bindWarnings)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTick: func(e *domain.TickEvent) {
			m.ticks.WithLabelValues(e.Node).Inc()
		},
		OnContingency: func(e *domain.ContingencyEvent) {
			m.contingencies.WithLabelValues(e.Node).Inc()
		},
		OnBindWarning: func(e *domain.BindWarningEvent) {
			m.bindWarnings.Inc()
		},
	}
}
