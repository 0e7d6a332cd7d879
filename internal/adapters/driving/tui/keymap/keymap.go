// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// PrevDay and NextDay move the day view by one day.
	PrevDay key.Binding
	NextDay key.Binding

	// Today jumps to the current day.
	Today key.Binding

	// GoTo opens the date prompt.
	GoTo key.Binding

	// Generate builds the menu for the day if none is stored.
	Generate key.Binding

	// Regenerate replaces the stored menu for the day.
	Regenerate key.Binding

	// History lists stored menus.
	History key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "go to date"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		History: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menus"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// DayHelp returns keybindings for the day view.
func (k *KeyMap) DayHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Generate, k.Regenerate, k.Back}
}

// HistoryHelp returns keybindings for the history view.
func (k *KeyMap) HistoryHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Today, k.GoTo},
		{k.Generate, k.Regenerate, k.History},
		{k.Up, k.Down, k.Select},
		{k.Back, k.Help, k.Quit},
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
