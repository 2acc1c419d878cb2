package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the container browser TUI.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Convert key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Convert: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "convert"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Back: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
}
