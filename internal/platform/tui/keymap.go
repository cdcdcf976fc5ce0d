package tui

import "github.com/charmbracelet/bubbles/key"

// SimKeyMap defines the key bindings for the simulation viewer.
type SimKeyMap struct {
	Pause      key.Binding
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	PanUp      key.Binding
	PanDown    key.Binding
	PanLeft    key.Binding
	PanRight   key.Binding
	NextTarget key.Binding
	FreeCamera key.Binding
	Trails     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SimKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.SpeedUp, k.ZoomIn, k.NextTarget, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SimKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.SpeedDown, k.SpeedUp, k.Trails},
		{k.ZoomIn, k.ZoomOut, k.NextTarget, k.FreeCamera},
		{k.PanUp, k.PanDown, k.PanLeft, k.PanRight},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultSimKeyMap returns default key bindings.
func DefaultSimKeyMap() SimKeyMap {
	return SimKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("]", "."),
			key.WithHelp("]", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("[", ","),
			key.WithHelp("[", "slower"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "pan down"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "pan right"),
		),
		NextTarget: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "follow next body"),
		),
		FreeCamera: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "free camera"),
		),
		Trails: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle trails"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
