package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/astronexus/internal/browse"
	"github.com/papapumpkin/astronexus/internal/dataset"
)

// bodyRadius maps the zoom level to the drawn disc's half-width in cells.
// Closer zooms draw a larger body.
var bodyRadius = []int{9, 7, 5, 3, 1}

func (m AppModel) renderExplorer() string {
	e := m.State.Explorer
	b := e.Body()
	zoom := e.ZoomLevel()

	var out strings.Builder
	out.WriteString("  " + styleDetailTitle.Render(b.Name) + "  " + styleRowMeta.Render(b.Summary()) + "\n")
	out.WriteString("  " + styleQueryLabel.Render("zoom: ") + styleQueryValue.Render(zoom.Name) +
		styleRowMeta.Render(fmt.Sprintf(" (%gx) %s", zoom.Scale, zoom.Description)) + "\n")
	out.WriteString("  " + toggle("atmosphere", e.ShowAtmosphere) + "  " + toggle("rings", e.ShowRings) +
		"  " + toggle("moons", e.ShowMoons) + "\n\n")

	out.WriteString(drawBody(b, e, bodyRadius[min(e.Zoom, len(bodyRadius)-1)]))
	out.WriteString("\n\n")

	fields := append(markLayer(b.LayerFields(), e.Layer), dataset.Field{Label: "Description", Value: b.Description})
	out.WriteString(indentBlock(FormatFields(fields, m.Width-4), "  "))
	return out.String()
}

func toggle(name string, on bool) string {
	if on {
		return styleSuccess.Render(iconFilled) + " " + styleRowNormal.Render(name)
	}
	return styleRowMeta.Render(iconEmpty + " " + name)
}

// drawBody renders the focused body as a text disc with its optional
// atmosphere halo, rings and moons.
func drawBody(b dataset.ExplorerBody, e browse.Explorer, radius int) string {
	disc := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color))
	halo := styleRowMeta
	if b.Atmosphere != nil {
		halo = lipgloss.NewStyle().Foreground(lipgloss.Color(b.Atmosphere.Color))
	}

	core := disc.Render(strings.Repeat("█", radius*2+1))
	line := core
	if e.ShowAtmosphere && b.Atmosphere != nil {
		line = halo.Render("░") + line + halo.Render("░")
	}
	if e.ShowRings && b.Rings != nil {
		line = styleWarning.Render("══(") + line + styleWarning.Render(")══")
	}
	if e.ShowMoons && b.Moons > 0 {
		line += "  " + styleRowNormal.Render(strings.Repeat("·", min(b.Moons, 12)))
		if b.Moons > 12 {
			line += styleRowMeta.Render(fmt.Sprintf(" +%d", b.Moons-12))
		}
	}
	return "    " + line
}

// indentBlock prefixes every line of s.
func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func (m AppModel) renderTelescope() string {
	sc := m.State.Scope
	t := sc.Telescope.Current()
	o := sc.Object.Current()

	var out strings.Builder
	out.WriteString("  " + styleQueryLabel.Render("telescope: ") + styleDetailTitle.Render(t.Name) +
		"  " + styleRowMeta.Render(t.Summary()) + "\n")
	out.WriteString("  " + styleQueryLabel.Render("target:    ") + styleDetailTitle.Render(o.Name) +
		"  " + styleRowMeta.Render(o.Type) + "\n")

	filters := []string{filterChip("none", sc.Filter == "")}
	for i, k := range t.WavelengthKeys() {
		filters = append(filters, filterChip(t.Wavelengths[i], sc.Filter == k))
	}
	out.WriteString("  " + styleQueryLabel.Render("filter:    ") + strings.Join(filters, " ") + "\n\n")

	tint := lipgloss.NewStyle().Foreground(tintColor(sc.Tint()))
	url := sc.ImageURL()
	if url == "" {
		url = t.ImageURL
	}
	frame := styleDetailBorder.BorderForeground(tintColor(sc.Tint())).Render(
		tint.Render(fieldOfView(max(min(m.Width-10, 48), 12))) + "\n" + styleRowMeta.Render(url))
	out.WriteString(frame + "\n\n")

	out.WriteString(indentBlock(FormatFields([]dataset.Field{
		{Label: "Object", Value: o.Description},
		{Label: "Instrument", Value: t.Description},
	}, m.Width-4), "  "))
	return out.String()
}

func filterChip(label string, active bool) string {
	if active {
		return styleSubTabActive.Render(label)
	}
	return styleSubTabInactive.Render(label)
}

// fieldOfView draws a fixed star field of the given width.
func fieldOfView(width int) string {
	const pattern = "  .   *     .        +    .   *      .    .  *   "
	lines := make([]string, 5)
	for i := range lines {
		offset := (i * 11) % len(pattern)
		s := strings.Repeat(pattern, width/len(pattern)+2)[offset:]
		lines[i] = s[:width]
	}
	return strings.Join(lines, "\n")
}
