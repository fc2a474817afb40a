// Package ui renders astronexus command output as styled terminal lines.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/papapumpkin/astronexus/internal/ansi"
	"github.com/papapumpkin/astronexus/internal/browse"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/derive"
)

// Printer writes line-oriented output. The zero value is not usable; build
// one with New or NewTo.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing colored output to stderr.
func New() *Printer {
	return &Printer{w: os.Stderr, color: true}
}

// NewTo returns a Printer writing to w, with ANSI styling when color is set.
func NewTo(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(s string, codes ...string) string {
	if !p.color {
		return s
	}
	return ansi.Paint(s, codes...)
}

func (p *Printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Banner prints the program banner.
func (p *Printer) Banner() {
	p.line("%s", p.paint("  ╔═══════════════════════════════════╗", ansi.Bold, ansi.Cyan))
	p.line("%s%s%s", p.paint("  ║", ansi.Bold, ansi.Cyan),
		p.paint("  ASTRONEXUS  ", ansi.Bold)+p.paint("explore the cosmos  ", ansi.Dim),
		p.paint("║", ansi.Bold, ansi.Cyan))
	p.line("%s", p.paint("  ╚═══════════════════════════════════╝", ansi.Bold, ansi.Cyan))
	p.line("")
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	p.line("%s%s", p.paint("error: ", ansi.Red, ansi.Bold), msg)
}

// Info prints a dim informational line.
func (p *Printer) Info(msg string) {
	p.line("%s", p.paint(msg, ansi.Dim))
}

// Notice prints a warning-style line, used when a request falls back to a
// default.
func (p *Printer) Notice(msg string) {
	p.line("%s %s", p.paint("⚠", ansi.Yellow, ansi.Bold), msg)
}

// Sections prints the section list with its number keys.
func (p *Printer) Sections(secs []browse.Section) {
	for _, s := range secs {
		p.line("  %s %-18s %s", p.paint(fmt.Sprintf("[%d]", s.Key()), ansi.Cyan),
			s.Title(), p.paint(s.Label(), ansi.Dim))
	}
}

// Stores prints the catalog names accepted by list and show.
func (p *Printer) Stores(names []string) {
	p.line("%s", p.paint("stores:", ansi.Dim))
	for _, n := range names {
		p.line("  %s", n)
	}
}

// Results prints one row per record followed by the result count. An empty
// result prints only the count.
func (p *Printer) Results(items []dataset.Item) {
	width := 0
	for _, it := range items {
		width = max(width, len(it.RecordID()))
	}
	for _, it := range items {
		id := fmt.Sprintf("%-*s", width, it.RecordID())
		p.line("  %s  %s %s", p.paint(id, ansi.Dim), p.paint(it.DisplayName(), ansi.Bold),
			p.paint("("+it.RecordCategory()+")", ansi.Cyan))
		if s := it.Summary(); s != "" {
			p.line("  %s  %s", strings.Repeat(" ", width), s)
		}
	}
	p.line("%s", p.paint(Count(len(items)), ansi.Dim))
}

// Count renders "N result(s)".
func Count(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

// Detail prints a record's header and fields.
func (p *Printer) Detail(it dataset.Item) {
	p.line("%s %s", p.paint("◆ "+it.DisplayName(), ansi.Bold, ansi.Cyan), p.paint(it.RecordCategory(), ansi.Dim))
	if s := it.Summary(); s != "" {
		p.line("  %s", p.paint(s, ansi.Italic))
	}
	p.Fields(it.Fields())
}

// Fields prints labelled values. List fields print one bullet per item.
func (p *Printer) Fields(fields []dataset.Field) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}
	for _, f := range fields {
		label := p.paint(fmt.Sprintf("%-*s", width+1, f.Label+":"), ansi.Bold)
		if len(f.Items) == 0 {
			p.line("  %s %s", label, f.Value)
			continue
		}
		p.line("  %s %s", label, f.Value)
		for _, it := range f.Items {
			p.line("    • %s", it)
		}
	}
}

// Comparison prints both bodies' values on dimension c.Dimension and the
// resulting sentence.
func (p *Printer) Comparison(a, b dataset.Body, c derive.Comparison) {
	p.line("%s", p.paint("── "+c.Dimension.String()+" ──", ansi.Bold, ansi.Magenta))
	for _, body := range []dataset.Body{a, b} {
		p.line("  %-10s %s", body.Name, derive.DisplayValue(body, c.Dimension))
	}
	p.line("%s", p.paint(c.String(), ansi.Bold))
}

// Mission prints the filled slots, aggregate stats and any compatibility
// issues.
func (p *Printer) Mission(m derive.Mission) {
	for _, s := range derive.Slots {
		name := p.paint("(empty)", ansi.Dim)
		if c, ok := m.Get(s); ok {
			name = c.Name
		}
		p.line("  %-12s %s", s.String()+":", name)
	}
	st := derive.Aggregate(m)
	p.line("  %-12s %s", "cost:", dataset.FormatCost(st.Cost))
	p.line("  %-12s %.1f%%", "reliability:", st.Reliability)
	for _, issue := range derive.Issues(m) {
		p.line("%s %s", p.paint("⚠", ansi.Yellow, ansi.Bold), issue)
	}
}

// Outcome prints a simulated launch result.
func (p *Printer) Outcome(o derive.Outcome) {
	if o.Success {
		p.line("%s (%.1f%% success probability)", p.paint("✓ MISSION SUCCESS", ansi.Green, ansi.Bold), o.Probability)
		return
	}
	p.line("%s (%.1f%% success probability)", p.paint("✗ MISSION FAILED", ansi.Red, ansi.Bold), o.Probability)
}

// Question echoes the user's chat message.
func (p *Printer) Question(text string) {
	p.line("%s %s", p.paint("you>", ansi.Bold, ansi.Blue), text)
}

// Typing prints the mentor typing indicator without a newline. ClearTyping
// removes it.
func (p *Printer) Typing() {
	fmt.Fprint(p.w, p.paint("mentor is typing...", ansi.Dim))
}

// ClearTyping erases the typing indicator line.
func (p *Printer) ClearTyping() {
	if p.color {
		fmt.Fprint(p.w, ansi.CarriageReturn+ansi.ClearLine)
		return
	}
	fmt.Fprintln(p.w)
}

// Answer prints the mentor's reply.
func (p *Printer) Answer(text string) {
	p.line("%s %s", p.paint("mentor>", ansi.Bold, ansi.Magenta), text)
}
