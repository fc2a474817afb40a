package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func counterValue(t *testing.T, m *Metrics, kind, dataset string) float64 {
	t.Helper()
	return testutil.ToFloat64(m.events.WithLabelValues(kind, dataset))
}

func TestMetrics_ObserveCountsByKindAndDataset(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.Observe(Event{Kind: KindQuery, Dataset: "gallery", Data: QueryData{Results: 3}})
	m.Observe(Event{Kind: KindQuery, Dataset: "gallery", Data: QueryData{Results: 0}})
	m.Observe(Event{Kind: KindQuery, Dataset: "timeline"})
	m.Observe(Event{Kind: KindSectionView})

	tests := []struct {
		kind    string
		dataset string
		want    float64
	}{
		{KindQuery, "gallery", 2},
		{KindQuery, "timeline", 1},
		{KindSectionView, "", 1},
		{KindDetailOpen, "gallery", 0},
	}
	for _, tt := range tests {
		if got := counterValue(t, m, tt.kind, tt.dataset); got != tt.want {
			t.Errorf("events_total{%s,%s} = %v, want %v", tt.kind, tt.dataset, got, tt.want)
		}
	}
}

func TestMetrics_SimulationResults(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.Observe(Event{Kind: KindSimulation, Data: SimulationData{Probability: 90, Success: true}})
	m.Observe(Event{Kind: KindSimulation, Data: SimulationData{Probability: 90, Success: true}})
	m.Observe(Event{Kind: KindSimulation, Data: SimulationData{Probability: 40}})

	if got := testutil.ToFloat64(m.simulations.WithLabelValues("success")); got != 2 {
		t.Errorf("success = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.simulations.WithLabelValues("failure")); got != 1 {
		t.Errorf("failure = %v, want 1", got)
	}
}

func TestMetrics_WriteTextfile(t *testing.T) {
	t.Parallel()
	m := NewMetrics()
	m.Observe(Event{Kind: KindMentorAnswer})

	path := filepath.Join(t.TempDir(), "astronexus.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(data)
	for _, want := range []string{
		"# TYPE astronexus_events_total counter",
		`astronexus_events_total{dataset="",kind="mentor_answer"} 1`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("textfile missing %q:\n%s", want, s)
		}
	}
}

func TestMetrics_WriteTextfileBadPath(t *testing.T) {
	t.Parallel()
	err := NewMetrics().WriteTextfile("/nonexistent/dir/astronexus.prom")
	if err == nil {
		t.Fatal("expected error for bad path, got nil")
	}
	if !strings.Contains(err.Error(), "telemetry: write metrics") {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}

func TestNilMetrics_NoOp(t *testing.T) {
	t.Parallel()
	var m *Metrics
	m.Observe(Event{Kind: KindQuery})
	if m.Registry() != nil {
		t.Error("nil Metrics should have a nil registry")
	}
	if err := m.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")); err != nil {
		t.Errorf("nil WriteTextfile: %v", err)
	}
}
