package derive

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/astronexus/internal/dataset"
)

// fixedSource returns the same value on every draw.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

var (
	falcon9    = dataset.Component{ID: "falcon-9", Type: "rocket", Cost: 62000000, Reliability: 95}
	marsRover  = dataset.Component{ID: "mars-rover", Type: "payload", Cost: 2500000000, Reliability: 80}
	commSat    = dataset.Component{ID: "communications-sat", Type: "payload", Cost: 150000000, Reliability: 98}
	leo        = dataset.Component{ID: "leo", Type: "orbit", Cost: 0, Reliability: 99}
	geo        = dataset.Component{ID: "geo", Type: "orbit", Cost: 10000000, Reliability: 95}
	marsOrbit  = dataset.Component{ID: "mars-orbit", Type: "orbit", Cost: 100000000, Reliability: 80}
	earthDest  = dataset.Component{ID: "earth", Type: "destination", Cost: 0, Reliability: 99}
	marsDest   = dataset.Component{ID: "mars", Type: "destination", Cost: 0, Reliability: 75}
	unknownCmp = dataset.Component{ID: "warp-drive", Type: "engine"}
)

func build(t *testing.T, parts ...dataset.Component) Mission {
	t.Helper()
	var m Mission
	for _, c := range parts {
		var err error
		if m, err = m.Set(c); err != nil {
			t.Fatalf("Set(%s): %v", c.ID, err)
		}
	}
	return m
}

func TestAggregateEmptyIsZero(t *testing.T) {
	t.Parallel()
	if got := Aggregate(Mission{}); got != (Stats{}) {
		t.Errorf("Aggregate(empty) = %+v, want {0 0}", got)
	}
}

func TestAggregateSingleComponent(t *testing.T) {
	t.Parallel()
	got := Aggregate(build(t, falcon9))
	want := Stats{Cost: 62000000, Reliability: 95}
	if got != want {
		t.Errorf("Aggregate = %+v, want %+v", got, want)
	}
}

func TestAggregateAverages(t *testing.T) {
	t.Parallel()
	got := Aggregate(build(t, falcon9, commSat, geo, earthDest))
	want := Stats{Cost: 222000000, Reliability: (95 + 98 + 95 + 99) / 4.0}
	if got != want {
		t.Errorf("Aggregate = %+v, want %+v", got, want)
	}
}

func TestSetReplacesSlot(t *testing.T) {
	t.Parallel()
	m := build(t, commSat)
	m2, err := m.Set(marsRover)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := m2.Get(SlotPayload); got.ID != "mars-rover" {
		t.Errorf("payload = %s, want mars-rover", got.ID)
	}
	if got, _ := m.Get(SlotPayload); got.ID != "communications-sat" {
		t.Errorf("Set mutated the receiver")
	}
	if len(m2.Components()) != 1 {
		t.Errorf("replacing should not add a slot: %d", len(m2.Components()))
	}
}

func TestSetUnknownType(t *testing.T) {
	t.Parallel()
	if _, err := (Mission{}).Set(unknownCmp); err == nil {
		t.Fatal("expected error for unknown component type")
	}
}

func TestClearAndComplete(t *testing.T) {
	t.Parallel()
	m := build(t, falcon9, commSat, geo, earthDest)
	if !m.Complete() {
		t.Fatal("four slots should be complete")
	}
	m = m.Clear(SlotOrbit)
	if m.Complete() {
		t.Error("cleared mission should be incomplete")
	}
	if _, ok := m.Get(SlotOrbit); ok {
		t.Error("cleared slot still filled")
	}
}

func TestIssues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		parts []dataset.Component
		want  []string
	}{
		{"Compatible", []dataset.Component{commSat, geo}, nil},
		{"RoverInLEO", []dataset.Component{marsRover, leo}, []string{"Mars rover requires Mars transfer orbit"}},
		{"SatInMarsOrbit", []dataset.Component{commSat, marsOrbit}, []string{"Communications satellite works best in geostationary orbit"}},
		{"NoOrbitYet", []dataset.Component{marsRover}, nil},
		{"RoverInMarsOrbit", []dataset.Component{marsRover, marsOrbit}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Issues(build(t, tt.parts...))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSimulate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		stats       Stats
		issues      []string
		draw        float64
		wantProb    float64
		wantSuccess bool
	}{
		{"MidDrawNoNoise", Stats{Reliability: 90}, nil, 0.5, 90, true},
		{"LowDraw", Stats{Reliability: 80}, nil, 0, 75, false},
		{"HighDrawStillShort", Stats{Reliability: 71}, nil, 0.75, 73.5, false},
		{"JustOver", Stats{Reliability: 71}, nil, 1, 76, true},
		{"IssuePenalty", Stats{Reliability: 95}, []string{"a"}, 0.5, 80, true},
		{"TwoIssues", Stats{Reliability: 95}, []string{"a", "b"}, 0.5, 65, false},
		{"ClampLow", Stats{Reliability: 10}, []string{"a", "b", "c"}, 0, 0, false},
		{"ClampHigh", Stats{Reliability: 99}, nil, 1, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Simulate(tt.stats, tt.issues, fixedSource(tt.draw))
			if diff := got.Probability - tt.wantProb; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Probability = %v, want %v", got.Probability, tt.wantProb)
			}
			if got.Success != tt.wantSuccess {
				t.Errorf("Success = %v, want %v", got.Success, tt.wantSuccess)
			}
		})
	}
}

func TestSimulateStaysInRange(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		out := Simulate(Stats{Reliability: float64(i % 101)}, make([]string, i%4), rng)
		if out.Probability < 0 || out.Probability > 100 {
			t.Fatalf("probability %v out of range", out.Probability)
		}
		if out.Success != (out.Probability > SuccessThreshold) {
			t.Fatalf("success %v inconsistent with probability %v", out.Success, out.Probability)
		}
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	if _, ok := Run(build(t, falcon9, marsRover), fixedSource(0.5)); ok {
		t.Error("incomplete mission should not launch")
	}

	m := build(t, falcon9, marsRover, leo, marsDest)
	out, ok := Run(m, fixedSource(0.5))
	if !ok {
		t.Fatal("complete mission should launch")
	}
	wantCost := falcon9.Cost + marsRover.Cost + leo.Cost + marsDest.Cost
	if out.Cost != wantCost {
		t.Errorf("Cost = %d, want %d", out.Cost, wantCost)
	}
	if len(out.Issues) != 1 {
		t.Errorf("Issues = %v, want one", out.Issues)
	}
}
