package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the add-transaction form.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	ToggleType key.Binding
	NextCat    key.Binding
	PrevCat    key.Binding
	Submit     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		ToggleType: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "income/expense"),
		),
		NextCat: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next category"),
		),
		PrevCat: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous category"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
