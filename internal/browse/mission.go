package browse

import (
	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/derive"
)

// MissionState is the mission builder: the chosen components, a cursor
// over the component catalog and the last simulation.
type MissionState struct {
	store      *catalog.Store[dataset.Component]
	Mission    derive.Mission
	Cursor     int
	Outcome    derive.Outcome
	HasOutcome bool
	Simulating bool
}

// NewMissionState returns an empty mission.
func NewMissionState(store *catalog.Store[dataset.Component]) MissionState {
	return MissionState{store: store}
}

// Move shifts the cursor through the component catalog, clamped.
func (m MissionState) Move(delta int) MissionState {
	m.Cursor = max(0, min(m.Cursor+delta, m.store.Len()-1))
	return m
}

// Highlighted returns the component under the cursor.
func (m MissionState) Highlighted() (dataset.Component, bool) {
	return m.store.At(m.Cursor)
}

// Choose places c in its slot and discards the last outcome. Choosing is
// ignored while a simulation runs.
func (m MissionState) Choose(c dataset.Component) (MissionState, error) {
	if m.Simulating {
		return m, nil
	}
	next, err := m.Mission.Set(c)
	if err != nil {
		return m, err
	}
	m.Mission = next
	m.Outcome, m.HasOutcome = derive.Outcome{}, false
	return m, nil
}

// ChooseHighlighted chooses the component under the cursor.
func (m MissionState) ChooseHighlighted() (MissionState, error) {
	c, ok := m.Highlighted()
	if !ok {
		return m, nil
	}
	return m.Choose(c)
}

// Stats returns the running cost and reliability.
func (m MissionState) Stats() derive.Stats { return derive.Aggregate(m.Mission) }

// Issues returns the current compatibility problems.
func (m MissionState) Issues() []string { return derive.Issues(m.Mission) }

// Start marks a simulation as running. It reports false, leaving the state
// unchanged, when the mission is incomplete or already simulating.
func (m MissionState) Start() (MissionState, bool) {
	if m.Simulating || !m.Mission.Complete() {
		return m, false
	}
	m.Simulating = true
	m.Outcome, m.HasOutcome = derive.Outcome{}, false
	return m, true
}

// Finish records a simulation result.
func (m MissionState) Finish(out derive.Outcome) MissionState {
	if !m.Simulating {
		return m
	}
	m.Simulating = false
	m.Outcome, m.HasOutcome = out, true
	return m
}

// Abort drops a running simulation without a result.
func (m MissionState) Abort() MissionState {
	m.Simulating = false
	return m
}

// Reset empties every slot and clears the outcome.
func (m MissionState) Reset() MissionState {
	m.Mission = derive.Mission{}
	m.Outcome, m.HasOutcome = derive.Outcome{}, false
	m.Simulating = false
	return m
}
