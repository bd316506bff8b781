// Package metrics collects prometheus instrumentation for the search flow
// and optionally exposes it over a local debug listener.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const labelOutcome = "outcome"

// Metrics holds the app's instruments, registered on an explicit registry.
type Metrics struct {
	Searches        prometheus.Counter
	SearchLatency   prometheus.Histogram
	QueryCommits    prometheus.Counter
	QuerySuperseded prometheus.Counter
	Settlements     *prometheus.CounterVec
}

// New registers all instruments on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Simulated catalog searches started",
		}),
		SearchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_search_latency_seconds",
			Help:    "Simulated search latency",
			Buckets: []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5},
		}),
		QueryCommits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "query_commits_total",
			Help: "Resource commits applied by the query controller",
		}),
		QuerySuperseded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "query_superseded_total",
			Help: "Scheduled queries discarded because a newer one arrived",
		}),
		Settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resource_settlements_total",
			Help: "Resource settlements by outcome",
		}, []string{labelOutcome}),
	}

	reg.MustRegister(m.Searches, m.SearchLatency, m.QueryCommits, m.QuerySuperseded, m.Settlements)
	return m
}

// ObserveSettlement records one settlement outcome ("success" or "failure").
func (m *Metrics) ObserveSettlement(outcome string) {
	if m == nil {
		return
	}
	m.Settlements.WithLabelValues(outcome).Inc()
}
