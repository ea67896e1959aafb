package tui

import key "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle  key.Binding
	Orbit   key.Binding
	Zoom    key.Binding
	Reset   key.Binding
	Legend  key.Binding
	Attrs   key.Binding
	Paste   key.Binding
	Help    key.Binding
	Quit    key.Binding
	Submit  key.Binding
	Cancel  key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/stop")),
		Orbit:   key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→/drag", "orbit")),
		Zoom:    key.NewBinding(key.WithKeys("+", "=", "-", "_"), key.WithHelp("+/-/wheel", "zoom")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset view")),
		Legend:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "legend")),
		Attrs:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "bars")),
		Paste:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste data")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "load")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "=")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Left:    key.NewBinding(key.WithKeys("left")),
		Right:   key.NewBinding(key.WithKeys("right")),
		Up:      key.NewBinding(key.WithKeys("up")),
		Down:    key.NewBinding(key.WithKeys("down")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Orbit, k.Zoom, k.Legend, k.Attrs, k.Paste, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Orbit, k.Zoom, k.Reset},
		{k.Legend, k.Attrs, k.Paste},
		{k.Help, k.Quit},
	}
}

// pasteHelp is shown while the paste box has focus.
type pasteHelp struct{ keyMap }

func (k pasteHelp) ShortHelp() []key.Binding { return []key.Binding{k.Submit, k.Cancel} }

func (k pasteHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
