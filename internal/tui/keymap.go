package tui

import "github.com/charmbracelet/bubbles/key"

// Keymap defines the global keybindings for the application.
type Keymap struct {
	Quit      key.Binding
	Help      key.Binding
	Back      key.Binding
	Open      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextLayer key.Binding
	PrevLayer key.Binding
	Jump      key.Binding
	Filter    key.Binding
	Summary   key.Binding
	Reload    key.Binding
	Copy      key.Binding
}

// DefaultKeymap returns the default keybindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "key details")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "right")),
		NextLayer: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next layer")),
		PrevLayer: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev layer")),
		Jump:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to layer")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Summary:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summary")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy binding")),
	}
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.NextLayer, k.Filter, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextLayer, k.PrevLayer, k.Jump, k.Summary},
		{k.Open, k.Filter, k.Copy, k.Reload},
		{k.Back, k.Help, k.Quit},
	}
}
