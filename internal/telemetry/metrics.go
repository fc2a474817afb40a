package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names, without the namespace.
const (
	MetricEventsTotal      = "events_total"
	MetricSimulationsTotal = "simulations_total"
	MetricQueryResults     = "query_results"
)

const metricsNamespace = "astronexus"

// Metrics tallies telemetry events into counters on a private Prometheus
// registry. A nil *Metrics ignores every call.
type Metrics struct {
	registry     *prometheus.Registry
	events       *prometheus.CounterVec
	simulations  *prometheus.CounterVec
	queryResults prometheus.Histogram
}

// NewMetrics creates a Metrics set with its own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      MetricEventsTotal,
				Help:      "Telemetry events recorded, by kind and dataset.",
			},
			[]string{"kind", "dataset"},
		),
		simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      MetricSimulationsTotal,
				Help:      "Mission simulations run, by result.",
			},
			[]string{"result"},
		),
		queryResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      MetricQueryResults,
				Help:      "Number of records returned per catalog query.",
				Buckets:   []float64{0, 1, 2, 5, 10, 20},
			},
		),
	}
	m.registry.MustRegister(m.events, m.simulations, m.queryResults)
	return m
}

// Observe counts evt. Simulation and query payloads also feed their
// dedicated series.
func (m *Metrics) Observe(evt Event) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(evt.Kind, evt.Dataset).Inc()
	switch d := evt.Data.(type) {
	case SimulationData:
		result := "failure"
		if d.Success {
			result = "success"
		}
		m.simulations.WithLabelValues(result).Inc()
	case QueryData:
		m.queryResults.Observe(float64(d.Results))
	}
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile writes the current values in the node_exporter textfile
// collector format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("telemetry: write metrics %s: %w", path, err)
	}
	return nil
}
