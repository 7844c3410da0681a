package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the preview key bindings
type KeyMap struct {
	Quit   key.Binding
	Flex   key.Binding
	Data   key.Binding
	Narrow key.Binding
	Widen  key.Binding
	Fit    key.Binding
	Reload key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Flex: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flex mode"),
		),
		Data: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "sample/live"),
		),
		Narrow: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "narrower"),
		),
		Widen: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "wider"),
		),
		Fit: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", "fit terminal"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flex, k.Data, k.Narrow, k.Widen, k.Reload, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flex, k.Data, k.Reload},
		{k.Narrow, k.Widen, k.Fit},
		{k.Quit},
	}
}
