package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/astronexus/internal/browse"
)

// --- Layout ---

// detailHeight is the viewport height left for an open record.
func (m AppModel) detailHeight() int {
	// header, tabs, sub-tabs, detail border and title, footer.
	return max(m.Height-9-len(m.Messages), 3)
}

// typing reports whether a text input has focus.
func (m AppModel) typing() bool {
	return m.Search.Focused() || m.Chat.Focused()
}

// detailOpen reports whether the visible section shows a record's detail.
func (m AppModel) detailOpen() bool {
	switch m.State.Section {
	case browse.SectionGallery:
		return m.State.Gallery.List.Open != ""
	case browse.SectionSolarSystem:
		return m.State.Planets.List.Open != ""
	case browse.SectionRadio:
		return m.State.Radio.Details
	}
	return false
}

// View renders the whole screen.
func (m AppModel) View() string {
	if m.showSplash && !m.Splash.Done() {
		if m.Width == 0 {
			return m.Splash.View()
		}
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.Splash.View())
	}
	if m.Width == 0 {
		return "initializing..."
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return fmt.Sprintf("terminal too small (%dx%d); need at least %dx%d", m.Width, m.Height, MinWidth, MinHeight)
	}

	parts := []string{
		m.renderHeader(),
		TabBar{Active: m.State.Section, Width: m.Width}.View(),
		m.renderSection(),
	}
	for _, msg := range m.Messages {
		parts = append(parts, styleMessage.Render(msg))
	}
	footer := Footer{
		Width:    m.Width,
		Bindings: SectionFooterBindings(m.State.Section, m.Keys, m.detailOpen(), m.typing()),
	}
	parts = append(parts, footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m AppModel) renderHeader() string {
	return styleHeader.Width(m.Width).Render(Logo() + "  " + m.State.Section.Title())
}

// bodyHeight is the number of lines available to a section's main view.
func (m AppModel) bodyHeight() int {
	return max(m.Height-6-len(m.Messages), 3)
}

func (m AppModel) renderSection() string {
	switch m.State.Section {
	case browse.SectionHome:
		return m.renderHome()
	case browse.SectionGallery:
		return m.renderGallery()
	case browse.SectionSolarSystem:
		return m.renderPlanets()
	case browse.SectionTimeline:
		return m.renderTimeline()
	case browse.SectionUniverse:
		return m.renderExplorer()
	case browse.SectionTelescope:
		return m.renderTelescope()
	case browse.SectionComparison:
		return m.renderCompare()
	case browse.SectionMission:
		return m.renderMission()
	case browse.SectionMentor:
		return m.renderMentor()
	case browse.SectionRadio:
		return m.renderRadio()
	}
	return ""
}

// syncDetail loads the open record into the detail panel. Content is only
// replaced when the record or tab changes so scrolling survives redraws.
func (m *AppModel) syncDetail() {
	title, content, id := m.detailContent()
	if id == "" {
		m.detailKey = ""
		return
	}
	if id == m.detailKey {
		return
	}
	m.detailKey = id
	m.Detail.SetSize(max(m.Width-4, 10), m.detailHeight())
	m.Detail.SetContent(title, content)
}

// detailContent returns the open record's title, body and a key that
// changes whenever the body would.
func (m AppModel) detailContent() (title, content, id string) {
	width := max(m.Width-6, 20)
	switch m.State.Section {
	case browse.SectionGallery:
		img, ok := m.State.Gallery.List.Opened()
		if !ok {
			return "", "", ""
		}
		view := m.State.Gallery.View
		return img.Title, FormatFields(galleryFields(img, view), width),
			fmt.Sprintf("gallery/%s/%d", img.ID, view)
	case browse.SectionSolarSystem:
		p := m.State.Planets
		planet, ok := p.List.Opened()
		if !ok {
			return "", "", ""
		}
		return planet.Name, FormatFields(planetFields(planet, p.View, p.Layer), width),
			fmt.Sprintf("planets/%s/%d/%d", planet.ID, p.View, p.Layer)
	case browse.SectionRadio:
		if !m.State.Radio.Details {
			return "", "", ""
		}
		s := m.State.Radio.Tuned.Current()
		return s.Name, FormatFields(s.Fields(), width), "radio/" + s.ID
	}
	return "", "", ""
}

// rows renders a scrolling window of height lines around cursor.
func rows(n, cursor, height int, render func(i int, selected bool) string) string {
	if n == 0 || height <= 0 {
		return ""
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := min(start+height, n)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, render(i, i == cursor))
	}
	return strings.Join(lines, "\n")
}

// row renders one list line: name then muted metadata, truncated to width.
func row(name, meta string, selected bool, width int) string {
	avail := max(width-4, 10)
	name = TruncateWithEllipsis(name, avail)
	meta = TruncateWithEllipsis(meta, max(avail-len([]rune(name))-2, 0))
	if selected {
		line := styleSelectionIndicator.Render(selectionIndicator) + " " + styleRowSelected.Render(name)
		if meta != "" {
			line += "  " + styleRowMeta.Render(meta)
		}
		return line
	}
	line := "  " + styleRowNormal.Render(name)
	if meta != "" {
		line += "  " + styleRowMeta.Render(meta)
	}
	return line
}
