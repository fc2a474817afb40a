package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/papapumpkin/astronexus/internal/browse"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		part := styleFooterKey.Render(help.Key)
		if !compact {
			part += styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	return styleFooter.Width(f.Width).Render(strings.Join(parts, sep))
}

// SectionFooterBindings returns the hints for a section. detail reports
// whether a record is open; typing whether a text input has focus.
func SectionFooterBindings(s browse.Section, km KeyMap, detail, typing bool) []key.Binding {
	if typing {
		return []key.Binding{km.Enter, km.Back, km.NextTab}
	}
	var b []key.Binding
	switch s {
	case browse.SectionHome:
		b = []key.Binding{km.Up, km.Down, km.Enter}
	case browse.SectionGallery:
		if detail {
			b = []key.Binding{km.View, km.Back}
		} else {
			b = []key.Binding{km.Up, km.Down, km.Enter, km.Search, km.Category, km.Sort}
		}
	case browse.SectionSolarSystem:
		if detail {
			b = []key.Binding{km.View, km.Layer, km.Back}
		} else {
			b = []key.Binding{km.Up, km.Down, km.Enter, km.Search, km.Category, km.Sort}
		}
	case browse.SectionTimeline:
		b = []key.Binding{km.Up, km.Down, km.Toggle, km.Search, km.Category, km.Facet, km.Sort}
	case browse.SectionUniverse:
		b = []key.Binding{km.Left, km.Right, km.ZoomIn, km.ZoomOut, km.Layer, km.Atmos, km.Rings, km.Moons, km.Reset}
	case browse.SectionTelescope:
		b = []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Filter}
	case browse.SectionComparison:
		b = []key.Binding{km.Up, km.Down, km.Swap, km.Measure, km.Reset}
	case browse.SectionMission:
		b = []key.Binding{km.Up, km.Down, km.Enter, km.Launch, km.Reset}
	case browse.SectionMentor:
		b = []key.Binding{km.Up, km.Down, km.Enter, km.Chat}
	case browse.SectionRadio:
		if detail {
			b = []key.Binding{km.Play, km.Info, km.Back}
		} else {
			b = []key.Binding{km.Up, km.Down, km.Enter, km.Play, km.Info, km.Search, km.Category}
		}
	}
	return append(b, km.NextTab, km.Quit)
}
