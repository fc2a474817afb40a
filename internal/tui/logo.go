package tui

import "github.com/charmbracelet/lipgloss"

// Logo style definitions for the header logo.
var (
	styleLogoOrbit = lipgloss.NewStyle().Foreground(colorNebula)
	styleLogoCore  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// Logo returns the styled single-line header logo: a ringed planet beside
// the program name. Background is inherited from the header.
func Logo() string {
	return styleLogoOrbit.Render("─(●)─") + " " + styleLogoCore.Render("ASTRONEXUS")
}

// LogoPlain returns the unstyled logo text.
func LogoPlain() string {
	return "─(●)─ ASTRONEXUS"
}
