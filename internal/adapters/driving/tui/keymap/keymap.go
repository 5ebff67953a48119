// Package keymap defines keybindings for the trip browser.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the trip browser.
type KeyMap struct {
	// Quit exits the browser.
	Quit key.Binding

	// Help toggles the full help view.
	Help key.Binding

	// Up moves the cursor up one row.
	Up key.Binding

	// Down moves the cursor down one row.
	Down key.Binding

	// NextPage shows the next window of trips.
	NextPage key.Binding

	// PrevPage shows the previous window of trips.
	PrevPage key.Binding

	// First jumps to the first window.
	First key.Binding

	// Last jumps to the last window.
	Last key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown", "right"),
			key.WithHelp("n/pgdn", "next rows"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "pgup", "left"),
			key.WithHelp("p/pgup", "previous rows"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first rows"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last rows"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.PrevPage, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextPage, k.PrevPage, k.First, k.Last},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
