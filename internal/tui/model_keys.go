package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/derive"
	"github.com/papapumpkin/astronexus/internal/schedule"
	"github.com/papapumpkin/astronexus/internal/telemetry"
)

// --- Section keys ---

func (m *AppModel) homeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.HomeCursor = max(m.HomeCursor-1, 0)
	case key.Matches(msg, m.Keys.Down):
		m.HomeCursor = min(m.HomeCursor+1, len(homeFeatures)-1)
	case key.Matches(msg, m.Keys.Enter):
		return m.switchTo(homeFeatures[m.HomeCursor].section)
	}
	return nil
}

func (m *AppModel) galleryKey(msg tea.KeyMsg) tea.Cmd {
	g := &m.State.Gallery
	if !g.Loaded {
		return nil
	}
	if g.List.Open != "" {
		switch {
		case key.Matches(msg, m.Keys.Back):
			g.List = g.List.Close()
		case key.Matches(msg, m.Keys.View):
			*g = g.NextView()
		default:
			m.Detail.Update(msg)
		}
		return nil
	}
	switch {
	case key.Matches(msg, m.Keys.Up):
		g.List = g.List.Move(-1)
	case key.Matches(msg, m.Keys.Down):
		g.List = g.List.Move(1)
	case key.Matches(msg, m.Keys.Enter):
		*g = g.Open()
		m.recordOpen(g.List.Open)
	case key.Matches(msg, m.Keys.Search):
		return m.focusSearch()
	case key.Matches(msg, m.Keys.Category):
		g.List = g.List.CycleFilter(catalog.FacetCategory)
		m.recordQuery()
	case key.Matches(msg, m.Keys.Sort):
		g.List = g.List.CycleSort()
		m.recordQuery()
	}
	return nil
}

func (m *AppModel) planetsKey(msg tea.KeyMsg) tea.Cmd {
	p := &m.State.Planets
	if p.List.Open != "" {
		switch {
		case key.Matches(msg, m.Keys.Back):
			p.List = p.List.Close()
		case key.Matches(msg, m.Keys.View):
			*p = p.NextView()
		case key.Matches(msg, m.Keys.Layer):
			*p = p.NextLayer()
		default:
			m.Detail.Update(msg)
		}
		return nil
	}
	switch {
	case key.Matches(msg, m.Keys.Up):
		p.List = p.List.Move(-1)
	case key.Matches(msg, m.Keys.Down):
		p.List = p.List.Move(1)
	case key.Matches(msg, m.Keys.Enter):
		*p = p.Open()
		m.recordOpen(p.List.Open)
	case key.Matches(msg, m.Keys.Search):
		return m.focusSearch()
	case key.Matches(msg, m.Keys.Category):
		p.List = p.List.CycleFilter(catalog.FacetCategory)
		m.recordQuery()
	case key.Matches(msg, m.Keys.Sort):
		p.List = p.List.CycleSort()
		m.recordQuery()
	}
	return nil
}

func (m *AppModel) timelineKey(msg tea.KeyMsg) tea.Cmd {
	l := &m.State.Timeline
	switch {
	case key.Matches(msg, m.Keys.Up):
		*l = l.Move(-1)
	case key.Matches(msg, m.Keys.Down):
		*l = l.Move(1)
	case key.Matches(msg, m.Keys.Toggle), key.Matches(msg, m.Keys.Enter):
		*l = l.Toggle()
	case key.Matches(msg, m.Keys.Search):
		return m.focusSearch()
	case key.Matches(msg, m.Keys.Category):
		*l = l.CycleFilter(catalog.FacetCategory)
		m.recordQuery()
	case key.Matches(msg, m.Keys.Facet):
		*l = l.CycleFilter(dataset.FacetScale)
		m.recordQuery()
	case key.Matches(msg, m.Keys.Sort):
		*l = l.CycleSort()
		m.recordQuery()
	}
	return nil
}

func (m *AppModel) explorerKey(msg tea.KeyMsg) {
	e := &m.State.Explorer
	switch {
	case key.Matches(msg, m.Keys.Left), key.Matches(msg, m.Keys.Up):
		*e = e.Move(-1)
	case key.Matches(msg, m.Keys.Right), key.Matches(msg, m.Keys.Down):
		*e = e.Move(1)
	case key.Matches(msg, m.Keys.ZoomIn):
		*e = e.ZoomIn()
	case key.Matches(msg, m.Keys.ZoomOut):
		*e = e.ZoomOut()
	case key.Matches(msg, m.Keys.Layer):
		*e = e.NextLayer()
	case key.Matches(msg, m.Keys.Atmos):
		*e = e.ToggleAtmosphere()
	case key.Matches(msg, m.Keys.Rings):
		*e = e.ToggleRings()
	case key.Matches(msg, m.Keys.Moons):
		*e = e.ToggleMoons()
	case key.Matches(msg, m.Keys.Reset):
		*e = e.Reset()
	}
}

func (m *AppModel) telescopeKey(msg tea.KeyMsg) {
	s := &m.State.Scope
	switch {
	case key.Matches(msg, m.Keys.Up):
		*s = s.MoveObject(-1)
	case key.Matches(msg, m.Keys.Down):
		*s = s.MoveObject(1)
	case key.Matches(msg, m.Keys.Left):
		*s = s.MoveTelescope(-1)
	case key.Matches(msg, m.Keys.Right):
		*s = s.MoveTelescope(1)
	case key.Matches(msg, m.Keys.Filter):
		*s = s.CycleFilter()
	}
}

func (m *AppModel) compareKey(msg tea.KeyMsg) {
	c := &m.State.Compare
	switch {
	case key.Matches(msg, m.Keys.Up):
		*c = c.Move(-1)
	case key.Matches(msg, m.Keys.Down):
		*c = c.Move(1)
	case key.Matches(msg, m.Keys.Swap):
		*c = c.SwitchSlot()
		return
	case key.Matches(msg, m.Keys.Measure):
		*c = c.CycleDimension()
	case key.Matches(msg, m.Keys.Reset):
		*c = c.Reset()
	default:
		return
	}
	m.record(telemetry.Event{Kind: telemetry.KindComparison, Dataset: dataset.StoreBodies, Data: c.Result().String()})
}

func (m *AppModel) missionKey(msg tea.KeyMsg) tea.Cmd {
	ms := &m.State.Mission
	switch {
	case key.Matches(msg, m.Keys.Up):
		*ms = ms.Move(-1)
	case key.Matches(msg, m.Keys.Down):
		*ms = ms.Move(1)
	case key.Matches(msg, m.Keys.Enter):
		next, err := ms.ChooseHighlighted()
		if err != nil {
			m.addMessage("%v", err)
			return nil
		}
		*ms = next
	case key.Matches(msg, m.Keys.Launch):
		return m.launch()
	case key.Matches(msg, m.Keys.Reset):
		m.tasks.CancelAll()
		*ms = ms.Reset()
	}
	return nil
}

// launch starts a simulation. The outcome is rolled now and revealed once
// the launch delay has elapsed.
func (m *AppModel) launch() tea.Cmd {
	next, ok := m.State.Mission.Start()
	if !ok {
		if !m.State.Mission.Simulating {
			m.addMessage("choose a rocket, payload, orbit and destination before launching")
		}
		return nil
	}
	out, _ := derive.Run(next.Mission, m.rng)
	m.State.Mission = next
	m.log.Debug("mission launched", zap.Float64("probability", out.Probability))

	task := schedule.After(m.ctx, m.Config.Mission.SimulateDelay, func() derive.Outcome { return out })
	m.tasks.Add(task)
	return await(task, func(o derive.Outcome) tea.Msg { return MsgSimulationDone{Outcome: o} })
}

func (m *AppModel) mentorKey(msg tea.KeyMsg) tea.Cmd {
	quick := m.Lib.Mentor.QuickQuestions
	switch {
	case key.Matches(msg, m.Keys.Chat):
		return m.Chat.Focus()
	case key.Matches(msg, m.Keys.Up):
		m.QuickCursor = max(m.QuickCursor-1, 0)
	case key.Matches(msg, m.Keys.Down):
		m.QuickCursor = max(min(m.QuickCursor+1, len(quick)-1), 0)
	case key.Matches(msg, m.Keys.Enter):
		if m.QuickCursor < len(quick) {
			return m.ask(quick[m.QuickCursor])
		}
	}
	return nil
}

func (m *AppModel) radioKey(msg tea.KeyMsg) tea.Cmd {
	r := &m.State.Radio
	switch {
	case key.Matches(msg, m.Keys.Back):
		if r.Details {
			*r = r.ToggleDetails()
		}
	case key.Matches(msg, m.Keys.Up):
		r.List = r.List.Move(-1)
	case key.Matches(msg, m.Keys.Down):
		r.List = r.List.Move(1)
	case key.Matches(msg, m.Keys.Enter):
		*r = r.Tune()
		m.recordOpen(r.Tuned.Current().ID)
	case key.Matches(msg, m.Keys.Play):
		*r = r.TogglePlay()
	case key.Matches(msg, m.Keys.Info):
		*r = r.ToggleDetails()
	case key.Matches(msg, m.Keys.Search):
		return m.focusSearch()
	case key.Matches(msg, m.Keys.Category):
		r.List = r.List.CycleFilter(catalog.FacetCategory)
		m.recordQuery()
	}
	return nil
}
