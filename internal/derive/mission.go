package derive

import (
	"fmt"

	"github.com/papapumpkin/astronexus/internal/dataset"
)

// Slot is a position in a mission. Each holds one component of the
// matching type.
type Slot int

// Mission slots, in display order.
const (
	SlotRocket Slot = iota
	SlotPayload
	SlotOrbit
	SlotDestination
)

// slotCount is the number of mission slots.
const slotCount = 4

// Slots lists every slot in display order.
var Slots = [slotCount]Slot{SlotRocket, SlotPayload, SlotOrbit, SlotDestination}

// String returns the component type the slot holds.
func (s Slot) String() string {
	switch s {
	case SlotRocket:
		return "rocket"
	case SlotPayload:
		return "payload"
	case SlotOrbit:
		return "orbit"
	case SlotDestination:
		return "destination"
	}
	return "unknown"
}

// SlotFor returns the slot for a component type.
func SlotFor(componentType string) (Slot, error) {
	for _, s := range Slots {
		if s.String() == componentType {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown component type %q", componentType)
}

// Mission is a set of up to four components, one per slot. The zero value
// is an empty mission. Mission is a value; Set and Clear return copies.
type Mission struct {
	parts  [slotCount]dataset.Component
	filled [slotCount]bool
}

// Set places c in the slot matching its type.
func (m Mission) Set(c dataset.Component) (Mission, error) {
	s, err := SlotFor(c.Type)
	if err != nil {
		return m, fmt.Errorf("component %s: %w", c.ID, err)
	}
	m.parts[s] = c
	m.filled[s] = true
	return m, nil
}

// Clear empties one slot.
func (m Mission) Clear(s Slot) Mission {
	if s >= 0 && s < slotCount {
		m.parts[s] = dataset.Component{}
		m.filled[s] = false
	}
	return m
}

// Get returns the component in s.
func (m Mission) Get(s Slot) (dataset.Component, bool) {
	if s < 0 || s >= slotCount || !m.filled[s] {
		return dataset.Component{}, false
	}
	return m.parts[s], true
}

// Components returns the filled slots in slot order.
func (m Mission) Components() []dataset.Component {
	var out []dataset.Component
	for _, s := range Slots {
		if m.filled[s] {
			out = append(out, m.parts[s])
		}
	}
	return out
}

// Complete reports whether every slot is filled.
func (m Mission) Complete() bool {
	for _, f := range m.filled {
		if !f {
			return false
		}
	}
	return true
}

// Stats is a mission's aggregate cost and reliability.
type Stats struct {
	Cost        int64   // USD
	Reliability float64 // mean percent
}

// Aggregate sums cost and averages reliability over the filled slots. An
// empty mission is {0, 0}.
func Aggregate(m Mission) Stats {
	parts := m.Components()
	if len(parts) == 0 {
		return Stats{}
	}
	var st Stats
	var rel float64
	for _, c := range parts {
		st.Cost += c.Cost
		rel += c.Reliability
	}
	st.Reliability = rel / float64(len(parts))
	return st
}

// CompatibilityRule requires a payload to fly in a particular orbit.
type CompatibilityRule struct {
	Payload string
	Orbit   string
	Issue   string
}

var compatibilityRules = []CompatibilityRule{
	{Payload: "mars-rover", Orbit: "mars-orbit", Issue: "Mars rover requires Mars transfer orbit"},
	{Payload: "lunar-lander", Orbit: "lunar-orbit", Issue: "Lunar lander requires lunar orbit"},
	{Payload: "communications-sat", Orbit: "geo", Issue: "Communications satellite works best in geostationary orbit"},
}

// CompatibilityRules returns the payload/orbit pairing rules in the order
// they are checked.
func CompatibilityRules() []CompatibilityRule {
	out := make([]CompatibilityRule, len(compatibilityRules))
	copy(out, compatibilityRules)
	return out
}

// Issues lists the rules m breaks. Rules are only checked once both the
// payload and the orbit are chosen.
func Issues(m Mission) []string {
	payload, okP := m.Get(SlotPayload)
	orbit, okO := m.Get(SlotOrbit)
	if !okP || !okO {
		return nil
	}
	var issues []string
	for _, r := range compatibilityRules {
		if payload.ID == r.Payload && orbit.ID != r.Orbit {
			issues = append(issues, r.Issue)
		}
	}
	return issues
}

// Source yields uniform floats in [0, 1). *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// SuccessThreshold is the probability a mission must exceed to succeed.
const SuccessThreshold = 75

// IssuePenalty is subtracted from the probability per compatibility issue.
const IssuePenalty = 15

// Outcome is the result of a simulated launch.
type Outcome struct {
	Success     bool
	Probability float64
	Cost        int64
	Issues      []string
}

// Simulate rolls a launch: reliability, less IssuePenalty per issue, plus
// uniform noise in [-5, +5), clamped to [0, 100].
func Simulate(st Stats, issues []string, src Source) Outcome {
	p := st.Reliability - IssuePenalty*float64(len(issues))
	p += (src.Float64() - 0.5) * 10
	p = min(max(p, 0), 100)
	return Outcome{
		Success:     p > SuccessThreshold,
		Probability: p,
		Cost:        st.Cost,
		Issues:      issues,
	}
}

// Run simulates m. It reports false when m is incomplete, in which case no
// launch happens.
func Run(m Mission, src Source) (Outcome, bool) {
	if !m.Complete() {
		return Outcome{}, false
	}
	return Simulate(Aggregate(m), Issues(m), src), true
}
