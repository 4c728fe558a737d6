package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the strip keybindings
type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	PageLeft  key.Binding
	PageRight key.Binding
	Home      key.Binding
	End       key.Binding
	Cancel    key.Binding
	Items     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "scroll right"),
		),
		PageLeft: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page left"),
		),
		PageRight: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "start"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "end"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Items: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "list items"),
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
}

// disableScrolling greys out the manual scroll bindings
func (k *keyMap) disableScrolling() {
	for _, b := range []*key.Binding{&k.Left, &k.Right, &k.PageLeft, &k.PageRight, &k.Home, &k.End, &k.Cancel} {
		b.SetEnabled(false)
	}
}

// ShortHelp returns the bindings shown under the strip
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Items, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped by column
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.PageLeft, k.PageRight},
		{k.Home, k.End, k.Cancel},
		{k.Items, k.Help, k.Quit},
	}
}
