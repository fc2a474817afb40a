package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/papapumpkin/astronexus/internal/browse"
	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/mentor"
	"github.com/papapumpkin/astronexus/internal/schedule"
	"github.com/papapumpkin/astronexus/internal/telemetry"
)

// --- Search input ---

// searchTarget reports whether the visible section has a searchable list.
func (m AppModel) searchTarget() bool {
	switch m.State.Section {
	case browse.SectionGallery, browse.SectionSolarSystem, browse.SectionTimeline, browse.SectionRadio:
		return true
	}
	return false
}

func (m *AppModel) focusSearch() tea.Cmd {
	m.Search.SetValue(m.currentSearch())
	m.Search.CursorEnd()
	return m.Search.Focus()
}

func (m *AppModel) searchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		_, cmd := m.quit()
		return cmd
	case "enter":
		m.Search.Blur()
		m.recordQuery()
		return nil
	case "esc":
		m.Search.Blur()
		m.Search.SetValue("")
		m.applySearch("")
		return nil
	case "tab":
		m.Search.Blur()
		return m.switchTo(m.State.Section.Next())
	case "shift+tab":
		m.Search.Blur()
		return m.switchTo(m.State.Section.Prev())
	}
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	m.applySearch(m.Search.Value())
	return cmd
}

// applySearch filters the visible list as the user types.
func (m *AppModel) applySearch(term string) {
	switch m.State.Section {
	case browse.SectionGallery:
		m.State.Gallery.List = m.State.Gallery.List.WithSearch(term)
	case browse.SectionSolarSystem:
		m.State.Planets.List = m.State.Planets.List.WithSearch(term)
	case browse.SectionTimeline:
		m.State.Timeline = m.State.Timeline.WithSearch(term)
	case browse.SectionRadio:
		m.State.Radio.List = m.State.Radio.List.WithSearch(term)
	}
}

func (m AppModel) currentSearch() string {
	switch m.State.Section {
	case browse.SectionGallery:
		return m.State.Gallery.List.Query.Search
	case browse.SectionSolarSystem:
		return m.State.Planets.List.Query.Search
	case browse.SectionTimeline:
		return m.State.Timeline.Query.Search
	case browse.SectionRadio:
		return m.State.Radio.List.Query.Search
	}
	return ""
}

// --- Chat input ---

func (m *AppModel) chatKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		_, cmd := m.quit()
		return cmd
	case "enter":
		text := m.Chat.Value()
		cmd := m.ask(text)
		if cmd != nil {
			m.Chat.SetValue("")
		}
		return cmd
	case "esc":
		m.Chat.Blur()
		return nil
	case "tab":
		m.Chat.Blur()
		return m.switchTo(m.State.Section.Next())
	case "shift+tab":
		m.Chat.Blur()
		return m.switchTo(m.State.Section.Prev())
	}
	var cmd tea.Cmd
	m.Chat, cmd = m.Chat.Update(msg)
	return cmd
}

// ask sends a question. The answer is chosen now and delivered after the
// mentor's thinking delay; switching sections cancels the delivery.
func (m *AppModel) ask(text string) tea.Cmd {
	next, ok := m.State.Chat.Ask(text, m.now())
	if !ok {
		return nil
	}
	m.State.Chat = next
	question, _ := next.Pending()
	reply := m.Responder.Respond(question)
	delay := mentor.DelayRange{Min: m.Config.Mentor.MinDelay, Max: m.Config.Mentor.MaxDelay}.Pick(m.rng)
	m.log.Debug("mentor question", zap.String("question", question), zap.Duration("delay", delay))

	task := schedule.After(m.ctx, delay, func() string { return reply })
	m.tasks.Add(task)
	return await(task, func(s string) tea.Msg { return MsgMentorReply{Text: s} })
}

// --- Telemetry and notices ---

func (m *AppModel) record(evt telemetry.Event) {
	if evt.Section == "" {
		evt.Section = m.State.Section.Label()
	}
	if err := m.rec.Record(evt); err != nil {
		m.log.Warn("recording telemetry", zap.String("kind", evt.Kind), zap.Error(err))
	}
}

func (m *AppModel) recordOpen(id string) {
	if id == "" {
		return
	}
	m.record(telemetry.Event{Kind: telemetry.KindDetailOpen, Dataset: m.datasetName(), Data: id})
}

// recordQuery records the visible list's query and result count.
func (m *AppModel) recordQuery() {
	var q telemetry.QueryData
	switch m.State.Section {
	case browse.SectionGallery:
		q = queryData(m.State.Gallery.List)
	case browse.SectionSolarSystem:
		q = queryData(m.State.Planets.List)
	case browse.SectionTimeline:
		q = queryData(m.State.Timeline)
	case browse.SectionRadio:
		q = queryData(m.State.Radio.List)
	default:
		return
	}
	m.record(telemetry.Event{Kind: telemetry.KindQuery, Dataset: m.datasetName(), Data: q})
}

func queryData[R dataset.Item](l browse.List[R]) telemetry.QueryData {
	return telemetry.QueryData{
		Search:   l.Query.Search,
		Category: l.Query.Filter(catalog.FacetCategory),
		Sort:     l.Query.Sort.String(),
		Results:  l.Result().Count(),
	}
}

func (m AppModel) datasetName() string {
	switch m.State.Section {
	case browse.SectionGallery:
		return dataset.StoreGallery
	case browse.SectionSolarSystem:
		return dataset.StorePlanets
	case browse.SectionTimeline:
		return dataset.StoreTimeline
	case browse.SectionRadio:
		return dataset.StoreSounds
	}
	return ""
}

// addMessage appends a notice, keeping only the most recent few.
func (m *AppModel) addMessage(format string, args ...any) {
	m.Messages = append(m.Messages, fmt.Sprintf(format, args...))
	if len(m.Messages) > maxMessages {
		m.Messages = m.Messages[len(m.Messages)-maxMessages:]
	}
}
