// SPDX-License-Identifier: MIT
// Package: twinwidth/internal/telemetry
//
// metrics.go - Prometheus Reporter and textfile export.

package telemetry

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/twinwidth/exact"
)

// MetricsReporter mirrors solver events into Prometheus collectors.
type MetricsReporter struct {
	events *prometheus.CounterVec
	nodes  *prometheus.GaugeVec
	pruned *prometheus.GaugeVec
	lower  prometheus.Gauge
	upper  prometheus.Gauge
	proven prometheus.Gauge
}

var _ exact.Reporter = (*MetricsReporter)(nil)

// NewMetricsReporter registers its collectors on reg.
func NewMetricsReporter(reg prometheus.Registerer) (*MetricsReporter, error) {
	m := &MetricsReporter{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tww", Name: "events_total", Help: "Solver events by kind.",
		}, []string{"kind"}),
		nodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tww", Name: "search_nodes", Help: "Search nodes expanded per worker.",
		}, []string{"worker"}),
		pruned: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tww", Name: "search_pruned", Help: "Search nodes pruned per worker.",
		}, []string{"worker"}),
		lower: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tww", Name: "lower_bound", Help: "Best known lower bound.",
		}),
		upper: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tww", Name: "upper_bound", Help: "Best known upper bound; -1 while unbounded.",
		}),
		proven: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tww", Name: "proven", Help: "1 once the upper bound is proven optimal.",
		}),
	}
	for _, c := range []prometheus.Collector{m.events, m.nodes, m.pruned, m.lower, m.upper, m.proven} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("telemetry: register: %w", err)
		}
	}
	m.upper.Set(-1)

	return m, nil
}

// Report implements exact.Reporter.
func (m *MetricsReporter) Report(e exact.Event) {
	m.events.WithLabelValues(e.Kind.String()).Inc()
	w := strconv.Itoa(e.Worker)
	m.nodes.WithLabelValues(w).Set(float64(e.Nodes))
	m.pruned.WithLabelValues(w).Set(float64(e.Pruned))
	m.lower.Set(float64(e.Lower))
	if e.Upper != exact.Unbounded {
		m.upper.Set(float64(e.Upper))
	}
	if e.Proven {
		m.proven.Set(1)
	}
}

// EventsCollector exposes the per-kind event counter.
func (m *MetricsReporter) EventsCollector() prometheus.Collector { return m.events }

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}

	return nil
}
