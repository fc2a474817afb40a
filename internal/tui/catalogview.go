package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papapumpkin/astronexus/internal/browse"
	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/ui"
)

// queryBar summarises a list's search, facet filters, sort and result
// count. While the search input has focus it is shown in place of the
// search term.
func (m AppModel) queryBar(q catalog.Query, facets []string, count int) string {
	var parts []string
	switch {
	case m.Search.Focused():
		parts = append(parts, m.Search.View())
	case q.Search != "":
		parts = append(parts, styleQueryLabel.Render("search: ")+styleQueryValue.Render(strconv.Quote(q.Search)))
	}
	for _, f := range facets {
		parts = append(parts, styleQueryLabel.Render(f+": ")+styleQueryValue.Render(q.Filter(f)))
	}
	parts = append(parts, styleQueryLabel.Render("sort: ")+styleQueryValue.Render(q.Sort.String()))
	parts = append(parts, styleRowMeta.Render(ui.Count(count)))
	return "  " + strings.Join(parts, "  ")
}

// listView renders a query bar above the visible rows of l. meta supplies
// the muted text after each name.
func listView[R dataset.Item](m AppModel, l browse.List[R], facets []string, meta func(R) string) string {
	res := l.Result()
	bar := m.queryBar(l.Query, facets, res.Count())
	if res.Empty() {
		return bar + "\n\n  " + styleEmptyState.Render("No records match the current search and filters.")
	}
	body := rows(res.Count(), l.Cursor, m.bodyHeight()-2, func(i int, selected bool) string {
		r := res.Records[i]
		return row(r.DisplayName(), meta(r), selected, m.Width)
	})
	return bar + "\n\n" + body
}

func summary[R dataset.Item](r R) string { return r.Summary() }

// renderDetail shows the open record's sub-tabs above the detail panel.
func (m AppModel) renderDetail(labels []string, active int) string {
	return "  " + subTabs(labels, active) + "\n" + m.Detail.View()
}

func (m AppModel) renderGallery() string {
	g := m.State.Gallery
	if !g.Loaded {
		return "\n  " + m.Spinner.View() + " " + styleDetailDim.Render("Loading gallery...")
	}
	if g.List.Open != "" {
		labels := []string{
			browse.ImageOverview.Label(),
			browse.ImageDetailed.Label(),
			browse.ImageTechnical.Label(),
		}
		return m.renderDetail(labels, int(g.View))
	}
	return listView(m, g.List, []string{catalog.FacetCategory}, summary[dataset.Image])
}

// galleryFields returns the fields shown on an image's detail tab.
func galleryFields(img dataset.Image, view browse.ImageView) []dataset.Field {
	switch view {
	case browse.ImageDetailed:
		return img.InfoFields()
	case browse.ImageTechnical:
		return img.TechnicalFields()
	}
	return nonEmpty([]dataset.Field{
		{Label: "Category", Value: img.Category},
		{Label: "Date", Value: img.Date},
		{Label: "Credits", Value: img.Credits},
		{Label: "Description", Value: img.Description},
		{Label: "URL", Value: img.URL},
	})
}

func (m AppModel) renderPlanets() string {
	p := m.State.Planets
	if p.List.Open != "" {
		labels := []string{
			browse.PlanetOverview.Label(),
			browse.PlanetDetailed.Label(),
			browse.PlanetLayers.Label(),
			browse.PlanetMissions.Label(),
		}
		return m.renderDetail(labels, int(p.View))
	}
	return listView(m, p.List, []string{catalog.FacetCategory}, summary[dataset.Planet])
}

// planetFields returns the fields shown on a planet's detail tab. On the
// layers tab the highlighted layer is marked.
func planetFields(p dataset.Planet, view browse.PlanetView, layer browse.Layer) []dataset.Field {
	switch view {
	case browse.PlanetDetailed:
		return p.Fields()
	case browse.PlanetLayers:
		return markLayer(p.LayerFields(), layer)
	case browse.PlanetMissions:
		if f := p.MissionFields(); len(f) > 0 {
			return f
		}
		return []dataset.Field{{Label: "Missions", Value: "No recorded missions"}}
	}
	return nonEmpty([]dataset.Field{
		{Label: "Class", Value: p.Category},
		{Label: "Temperature", Value: p.Temperature},
		{Label: "Moons", Value: strconv.Itoa(p.Moons)},
		{Label: "Diameter", Value: p.Info.Diameter},
		{Label: "Day length", Value: p.Info.DayLength},
		{Label: "Year length", Value: p.Info.YearLength},
		{Label: "Description", Value: p.Description},
	})
}

// markLayer prefixes the highlighted layer's label.
func markLayer(fields []dataset.Field, layer browse.Layer) []dataset.Field {
	out := make([]dataset.Field, len(fields))
	for i, f := range fields {
		if strings.EqualFold(f.Label, layer.Label()) {
			f.Label = iconCollapsed + " " + f.Label
		}
		out[i] = f
	}
	return out
}

func nonEmpty(fields []dataset.Field) []dataset.Field {
	out := fields[:0]
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" || len(f.Items) > 0 {
			out = append(out, f)
		}
	}
	return out
}

// timelineSkip lists fields already shown on a timeline row.
var timelineSkip = map[string]bool{"Title": true, "Date": true, "Category": true}

// renderTimeline draws every event as a row; expanded events show their
// full record beneath. The window scrolls by line so the cursor row stays
// visible.
func (m AppModel) renderTimeline() string {
	l := m.State.Timeline
	res := l.Result()
	bar := m.queryBar(l.Query, []string{catalog.FacetCategory, dataset.FacetScale}, res.Count())
	if res.Empty() {
		return bar + "\n\n  " + styleEmptyState.Render("No events match the current search and filters.")
	}

	var lines []string
	focus := 0
	for i, ev := range res.Records {
		icon := iconCollapsed
		expanded := l.Expanded.Has(ev.ID)
		if expanded {
			icon = iconExpanded
		}
		if i == l.Cursor {
			focus = len(lines)
		}
		lines = append(lines, row(icon+" "+ev.Title, ev.Date+" · "+ev.Category, i == l.Cursor, m.Width))
		if !expanded {
			continue
		}
		var fields []dataset.Field
		for _, f := range ev.Fields() {
			if !timelineSkip[f.Label] {
				fields = append(fields, f)
			}
		}
		for _, fl := range strings.Split(FormatFields(fields, m.Width-8), "\n") {
			lines = append(lines, "      "+fl)
		}
	}
	return bar + "\n\n" + windowLines(lines, focus, m.bodyHeight()-2)
}

// windowLines returns at most height lines of lines, scrolled so that
// line focus is visible.
func windowLines(lines []string, focus, height int) string {
	if height <= 0 || len(lines) == 0 {
		return ""
	}
	start := 0
	if focus >= height {
		start = focus - height + 1
	}
	end := min(start+height, len(lines))
	return strings.Join(lines[start:end], "\n")
}

func (m AppModel) renderRadio() string {
	r := m.State.Radio
	tuned := r.Tuned.Current()

	status := styleRowMeta.Render("■ stopped")
	if r.Playing {
		status = styleSuccess.Render(iconPlaying + " playing")
	}
	header := "  " + styleDetailTitle.Render(tuned.Name) + "  " +
		styleRowMeta.Render(fmt.Sprintf("%d Hz %s", tuned.Frequency, tuned.Waveform)) + "  " + status
	if r.Details {
		return header + "\n" + m.Detail.View()
	}

	wave := "  " + waveform(tuned.Waveform, max(m.Width-4, 10), r.Playing)
	list := listView(m, r.List, []string{catalog.FacetCategory}, func(s dataset.Sound) string {
		mark := ""
		if s.ID == tuned.ID {
			mark = "• "
			if r.Playing {
				mark = iconPlaying + " "
			}
		}
		return mark + s.Summary()
	})
	return header + "\n" + wave + "\n\n" + list
}

// waveform draws a repeating glyph pattern for a tone's wave shape. A
// stopped tone is drawn flat.
func waveform(shape string, width int, playing bool) string {
	if !playing {
		return styleRowMeta.Render(strings.Repeat("─", width))
	}
	unit := "∿"
	switch shape {
	case "square":
		unit = "┌┐└┘"
	case "sawtooth":
		unit = "/|"
	case "triangle":
		unit = "/\\"
	}
	s := strings.Repeat(unit, width/len([]rune(unit))+1)
	return styleBar.Render(truncateToNRunes(s, width))
}
