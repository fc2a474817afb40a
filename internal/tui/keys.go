package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Back     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Quit     key.Binding
	Search   key.Binding
	Category key.Binding
	Facet    key.Binding
	Sort     key.Binding
	Toggle   key.Binding
	View     key.Binding
	Layer    key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Atmos    key.Binding
	Rings    key.Binding
	Moons    key.Binding
	Filter   key.Binding
	Swap     key.Binding
	Measure  key.Binding
	Launch   key.Binding
	Reset    key.Binding
	Play     key.Binding
	Info     key.Binding
	Chat     key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev section"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Facet: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "scale"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "expand"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view"),
		),
		Layer: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "layer"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		Atmos: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "atmosphere"),
		),
		Rings: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rings"),
		),
		Moons: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "moons"),
		),
		Filter: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wavelength"),
		),
		Swap: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "switch slot"),
		),
		Measure: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dimension"),
		),
		Launch: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "launch"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "details"),
		),
		Chat: key.NewBinding(
			key.WithKeys("i", "/"),
			key.WithHelp("i", "type"),
		),
	}
}
