package mentor

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/astronexus/internal/dataset"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func loadResponder(t *testing.T) (Responder, dataset.Script) {
	t.Helper()
	lib, err := dataset.Load()
	if err != nil {
		t.Fatalf("dataset.Load: %v", err)
	}
	return NewResponder(lib.Mentor), lib.Mentor
}

func TestRespondRuleOrder(t *testing.T) {
	t.Parallel()
	r, _ := loadResponder(t)

	tests := []struct {
		question string
		wantRule string
	}{
		{"What is a black hole?", "black-hole"},
		{"Tell me about MARS", "mars"},
		{"Could a black hole swallow Mars?", "black-hole"},
		{"Is the moon bigger than Mars?", "mars"},
		{"How big is the solar system?", "solar-system"},
		{"What is the ISS space station?", "space-station"},
		{"How do rockets work?", "rocket"},
		{"Why is the sky dark?", "how-why"},
		{"When did Sputnik fly?", "when-date"},
		{"thanks!", "thanks"},
		{"Thank you", "thanks"},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			t.Parallel()
			rule, ok := r.Match(tt.question)
			if !ok {
				t.Fatalf("Match(%q) found no rule", tt.question)
			}
			if rule.Name != tt.wantRule {
				t.Errorf("Match(%q) = %s, want %s", tt.question, rule.Name, tt.wantRule)
			}
			if r.Respond(tt.question) != rule.Response {
				t.Errorf("Respond disagrees with Match")
			}
		})
	}
}

func TestRespondFallback(t *testing.T) {
	t.Parallel()
	r, script := loadResponder(t)

	for _, q := range []string{"What is dark matter?", "", "pulsars"} {
		if _, ok := r.Match(q); ok {
			t.Errorf("Match(%q) unexpectedly matched", q)
		}
		if got := r.Respond(q); got != script.Fallback {
			t.Errorf("Respond(%q) = %q, want fallback", q, got)
		}
	}
}

func TestRulesAreInScriptOrder(t *testing.T) {
	t.Parallel()
	r, _ := loadResponder(t)

	want := []string{
		"black-hole", "mars", "moon", "solar-system", "telescope", "galaxy",
		"space-station", "rocket", "how-why", "when-date", "thanks",
	}
	if diff := cmp.Diff(want, r.Rules()); diff != "" {
		t.Errorf("rule order mismatch (-want +got):\n%s", diff)
	}
}

func TestQuickQuestionsAnswer(t *testing.T) {
	t.Parallel()
	r, script := loadResponder(t)

	for _, q := range script.QuickQuestions {
		if r.Respond(q) == "" {
			t.Errorf("quick question %q got an empty answer", q)
		}
	}
}

func TestDelayRangePick(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rng  DelayRange
		draw float64
		want time.Duration
	}{
		{"Low", DefaultDelay, 0, time.Second},
		{"Mid", DefaultDelay, 0.5, 2 * time.Second},
		{"Fixed", DelayRange{Min: 2 * time.Second, Max: 2 * time.Second}, 0.9, 2 * time.Second},
		{"Inverted", DelayRange{Min: time.Second, Max: 0}, 0.9, time.Second},
		{"Zero", DelayRange{}, 0.7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.rng.Pick(fixedSource(tt.draw)); got != tt.want {
				t.Errorf("Pick = %v, want %v", got, tt.want)
			}
		})
	}
}
