package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorNebula      = lipgloss.Color("#B388FF") // Violet: active tab
	colorAccent      = lipgloss.Color("#FFD700") // Gold: attention
	colorSuccess     = lipgloss.Color("#00E676") // Green: success
	colorDanger      = lipgloss.Color("#FF5252") // Red: failures
	colorMuted       = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface: header bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface: footer bg
	colorInfrared    = lipgloss.Color("#FF7043") // Orange-red: infrared filter
	colorXRay        = lipgloss.Color("#7C4DFF") // Purple: x-ray filter
	colorUV          = lipgloss.Color("#448AFF") // Blue: ultraviolet filter
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Row icons.
const (
	iconExpanded  = "▾"
	iconCollapsed = "▸"
	iconFilled    = "●"
	iconEmpty     = "○"
	iconSuccess   = "✓"
	iconFailure   = "✗"
	iconWarning   = "⚠"
	iconPlaying   = "♪"
)

// Header styles.
var (
	styleHeader = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleHeaderTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Row styles.
var (
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleRowMeta = lipgloss.NewStyle().
			Foreground(colorMuted)

	// styleSelectionIndicator styles the left-edge indicator for the selected row.
	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Query bar styles.
var (
	styleQueryLabel = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleQueryValue = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleEmptyState = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)
)

// Detail panel styles: rounded border, styled title.
var (
	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDetailLabel = lipgloss.NewStyle().
				Foreground(colorMutedLight).
				Bold(true)

	styleDetailValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleScrollIndicator = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)
)

// Detail sub-tab styles.
var (
	styleSubTabActive = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Background(colorNebula).
				Bold(true).
				Padding(0, 1)

	styleSubTabInactive = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)
)

// Outcome and status styles.
var (
	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleDanger = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleBar = lipgloss.NewStyle().
			Foreground(colorPrimary)
)

// Chat styles.
var (
	styleChatUser = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleChatMentor = lipgloss.NewStyle().
			Foreground(colorNebula).
			Bold(true)

	styleChatTyping = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Footer styles: top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// styleMessage renders transient notices under the main view.
var styleMessage = lipgloss.NewStyle().
	Foreground(colorAccent).
	PaddingLeft(2)

// tintColor maps a telescope filter tint to its display color.
func tintColor(tint string) lipgloss.Color {
	switch tint {
	case "infrared":
		return colorInfrared
	case "xray":
		return colorXRay
	case "uv":
		return colorUV
	}
	return colorWhite
}
