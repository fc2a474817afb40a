package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/astronexus/internal/dataset"
)

// DetailPanel wraps a viewport for scrollable record details.
type DetailPanel struct {
	viewport   viewport.Model
	title      string
	totalLines int // total lines of content (before viewport clipping)
	emptyHint  string
}

// NewDetailPanel creates a detail panel with the given dimensions.
func NewDetailPanel(width, height int) DetailPanel {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return DetailPanel{viewport: vp}
}

// SetSize updates the viewport dimensions.
func (d *DetailPanel) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// SetContent updates the displayed text and title and scrolls to the top.
func (d *DetailPanel) SetContent(title, content string) {
	d.title = title
	d.emptyHint = ""
	d.totalLines = strings.Count(content, "\n") + 1
	d.viewport.SetContent(content)
	d.viewport.GotoTop()
}

// SetEmpty sets the detail panel to show an empty-state hint.
func (d *DetailPanel) SetEmpty(hint string) {
	d.title = ""
	d.emptyHint = hint
	d.totalLines = 0
	d.viewport.SetContent("")
	d.viewport.GotoTop()
}

// Title returns the current title.
func (d DetailPanel) Title() string { return d.title }

// Update handles viewport scroll messages.
// Home/g and End/G are handled explicitly because the viewport's built-in
// KeyMap does not bind those keys.
func (d *DetailPanel) Update(msg tea.Msg) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "home":
			d.viewport.GotoTop()
			return
		case "end":
			d.viewport.GotoBottom()
			return
		}
	}
	d.viewport, _ = d.viewport.Update(msg)
}

// View renders the detail panel with a rounded border and scroll indicators.
func (d DetailPanel) View() string {
	if d.emptyHint != "" {
		return styleDetailBorder.Render(styleDetailDim.Render(d.emptyHint))
	}

	var b strings.Builder
	if d.title != "" {
		b.WriteString(styleDetailTitle.Render(d.title))
		b.WriteString("\n")
	}
	if upMore := d.linesAbove(); upMore > 0 {
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↑ %d more", upMore)))
		b.WriteString("\n")
	}
	b.WriteString(d.viewport.View())
	if downMore := d.linesBelow(); downMore > 0 {
		b.WriteString("\n")
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↓ %d more", downMore)))
	}
	return styleDetailBorder.Render(b.String())
}

// linesAbove returns the number of content lines above the viewport.
func (d DetailPanel) linesAbove() int {
	return d.viewport.YOffset
}

// linesBelow returns the number of content lines below the viewport.
func (d DetailPanel) linesBelow() int {
	return max(d.totalLines-d.viewport.YOffset-d.viewport.Height, 0)
}

// FormatFields renders labelled fields, one per line, with list items as
// indented bullets. Values wrap at width when it is positive.
func FormatFields(fields []dataset.Field, width int) string {
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, len([]rune(f.Label)))
	}
	var lines []string
	for _, f := range fields {
		label := styleDetailLabel.Render(fmt.Sprintf("%-*s", labelWidth+1, f.Label+":"))
		value := f.Value
		if width > labelWidth+4 {
			value = wrap(value, width-labelWidth-3, labelWidth+2)
		}
		lines = append(lines, label+" "+styleDetailValue.Render(value))
		for _, it := range f.Items {
			lines = append(lines, "  • "+it)
		}
	}
	return strings.Join(lines, "\n")
}

// wrap breaks s into lines of at most width runes on word boundaries,
// indenting continuation lines by indent spaces.
func wrap(s string, width, indent int) string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return s
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len([]rune(cur))+1+len([]rune(w)) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	lines = append(lines, cur)
	return strings.Join(lines, "\n"+strings.Repeat(" ", indent))
}
