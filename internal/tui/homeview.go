package tui

import (
	"strings"

	"github.com/papapumpkin/astronexus/internal/browse"
)

// homeFeature is one entry point offered on the landing page.
type homeFeature struct {
	title       string
	description string
	section     browse.Section
}

// homeFeatures lists the landing page entries in display order.
var homeFeatures = []homeFeature{
	{title: "Universe Explorer", description: "Zoom from cosmic scales to planetary surfaces", section: browse.SectionUniverse},
	{title: "Space Gallery", description: "Explore stunning NASA & ESA imagery", section: browse.SectionGallery},
	{title: "Solar System", description: "Interactive planetary exploration", section: browse.SectionSolarSystem},
	{title: "Cosmic Timeline", description: "Journey through space history", section: browse.SectionTimeline},
	{title: "Telescope Simulator", description: "See through Hubble & Webb", section: browse.SectionTelescope},
}

// HomeView renders the landing page: a tagline and the feature entries.
type HomeView struct {
	Cursor int
	Width  int
}

// View renders the landing page. The selected entry is marked and shows
// the number key that also reaches it.
func (hv HomeView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + styleHeaderTitle.Render("Explore the Universe") + "\n")
	b.WriteString("  " + styleRowMeta.Render("Journey through space and time with real observatory imagery and data.") + "\n\n")

	for i, f := range homeFeatures {
		selected := i == hv.Cursor
		indicator := "  "
		title := styleRowNormal.Render(f.title)
		if selected {
			indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
			title = styleRowSelected.Render(f.title)
		}
		key := styleFooterKey.Render("[" + string(rune('0'+f.section.Key())) + "]")
		line := indicator + key + " " + padToWidth(title, 22)
		if hv.Width == 0 || hv.Width >= CompactWidth {
			line += styleRowMeta.Render(f.description)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n  " + styleDetailDim.Render("enter to open · tab or 0-9 to jump to any section"))
	return b.String()
}

func (m AppModel) renderHome() string {
	return HomeView{Cursor: m.HomeCursor, Width: m.Width}.View()
}
