package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Projection key.Binding
	Breakdown  key.Binding
	History    key.Binding
	Up         key.Binding
	Down       key.Binding
	Reload     key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("→/tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("←", "previous tab")),
		Projection: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projection")),
		Breakdown:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "breakdown")),
		History:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "scroll down")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "record today")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpRows lists bindings in the order the help overlay shows them.
func (k keyMap) helpRows() []key.Binding {
	return []key.Binding{
		k.Projection, k.Breakdown, k.History, k.NextTab, k.PrevTab,
		k.Up, k.Down, k.Reload, k.Save, k.Help, k.Quit,
	}
}
