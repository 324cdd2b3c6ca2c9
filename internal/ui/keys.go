package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the manifest viewer
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Activate key.Binding

	// Option cycling on the focused filter select
	OptionNext     key.Binding
	OptionPrevious key.Binding

	TabNext     key.Binding
	TabPrevious key.Binding
	TabJump     key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding

	Blur key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab/↓", "next"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("S-tab/↑", "previous"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "activate"),
	),
	OptionNext: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next option"),
	),
	OptionPrevious: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous option"),
	),
	TabNext: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next tab"),
	),
	TabPrevious: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous tab"),
	),
	TabJump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to tab"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "scroll down"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave input"),
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

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.TabJump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Activate},
		{k.OptionNext, k.OptionPrevious, k.Blur},
		{k.TabNext, k.TabPrevious, k.TabJump},
		{k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}
