package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keybindings for the game screen
type keyMap struct {
	Flap key.Binding
	Copy key.Binding
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns a short help text for the key bindings
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Copy, k.Quit}
}

// FullHelp returns the full help text for all key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Copy},
		{k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space/click", "flap"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy score"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}
