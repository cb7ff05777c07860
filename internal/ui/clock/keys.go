package clock

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Redraw key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
	Redraw: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "redraw"),
	),
}
