// Package ansi provides ANSI escape code constants and helpers for terminal output.
// All colored/styled line output should reference these constants to avoid duplication.
package ansi

import "strings"

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Italic    = "\033[3m"
	Underline = "\033[4m"
	Blue      = "\033[34m"
	Yellow    = "\033[33m"
	Green     = "\033[32m"
	Red       = "\033[31m"
	Cyan      = "\033[36m"
	Magenta   = "\033[35m"
)

// ANSI line control codes.
const (
	// ClearLine clears the entire current line.
	ClearLine = "\033[2K"

	// CarriageReturn moves the cursor to column zero.
	CarriageReturn = "\r"
)

// Paint wraps s in the given SGR codes followed by Reset. With no codes, s
// is returned unchanged.
func Paint(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// Strip removes SGR sequences produced by this package from s.
func Strip(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < '@' || s[j] > '~') {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
