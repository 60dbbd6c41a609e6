package cmd

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the application. It satisfies key.Map so
// it can be passed directly to bubbles/help.Model for automatic rendering.
type keyMap struct {
	Waves  key.Binding
	Add    key.Binding
	Back   key.Binding
	Submit key.Binding
	Legend key.Binding
	Save   key.Binding
	Buoy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Waves, k.Add, k.Legend, k.Save, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view (columns).
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Waves, k.Add, k.Back, k.Submit},
		{k.Legend, k.Save, k.Buoy},
		{k.Help, k.Quit},
	}
}

// keys is the set of key bindings used across the app.
var keys = keyMap{
	Waves: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "stored waves"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add wave"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave form"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit form"),
	),
	Legend: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "legend"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save image"),
	),
	Buoy: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "fetch buoy"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
