package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 10
)

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth triggers compact mode for the tab bar and footer.
	CompactWidth = 60
	// WideWidth places the detail panel beside the list instead of below it.
	WideWidth = 110
)

// TruncateWithEllipsis truncates s to maxLen runes, appending "..." if truncated.
// If maxLen is less than 4, returns s truncated to maxLen runes without ellipsis.
// Returns s unchanged if it fits within maxLen runes.
func TruncateWithEllipsis(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		if maxLen <= 0 {
			return ""
		}
		return truncateToNRunes(s, maxLen)
	}
	return truncateToNRunes(s, maxLen-3) + "..."
}

// truncateToNRunes returns the first n runes of s as a string.
func truncateToNRunes(s string, n int) string {
	i := 0
	for j := 0; j < n && i < len(s); j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// padToWidth pads a rendered (possibly ANSI-styled) string with spaces to fill
// the given width.
func padToWidth(s string, width int) string {
	if visible := lipgloss.Width(s); visible < width {
		s += strings.Repeat(" ", width-visible)
	}
	return s
}

// bar renders a horizontal gauge of width cells filled to frac (0..1).
func bar(frac float64, width int) string {
	if width <= 0 {
		return ""
	}
	frac = min(max(frac, 0), 1)
	filled := int(frac*float64(width) + 0.5)
	return styleBar.Render(strings.Repeat("█", filled)) + styleRowMeta.Render(strings.Repeat("░", width-filled))
}
