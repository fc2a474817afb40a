package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/astronexus/internal/browse"
)

// TabBar renders the horizontal row of section labels.
type TabBar struct {
	Active browse.Section
	Width  int
}

// View renders the tab bar as a single styled line. The active section is
// bold in the nebula accent color; the rest are muted. When the full labels
// do not fit, only the number keys plus the active label are shown.
func (tb TabBar) View() string {
	line := tb.line(false)
	if tb.Width > 0 && lipgloss.Width(line)+2 > tb.Width {
		line = tb.line(true)
	}
	return lipgloss.NewStyle().
		Width(tb.Width).
		PaddingLeft(2).
		Render(line)
}

func (tb TabBar) line(compact bool) string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorNebula)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(colorMuted)

	var parts []string
	for _, s := range browse.Sections() {
		label := fmt.Sprintf("[%d] %s", s.Key(), s.Label())
		if compact && s != tb.Active {
			label = fmt.Sprintf("%d", s.Key())
		}
		if s == tb.Active {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	sep := "  "
	if compact {
		sep = " "
	}
	return strings.Join(parts, sep)
}

// subTabs renders a row of detail sub-tabs with the active one highlighted.
func subTabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = styleSubTabActive.Render(l)
		} else {
			parts[i] = styleSubTabInactive.Render(l)
		}
	}
	return strings.Join(parts, " ")
}
