package timer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

type keymap struct {
	toggle   key.Binding
	reset    key.Binding
	log      key.Binding
	category key.Binding
	add      key.Binding
	increase key.Binding
	decrease key.Binding
	quit     key.Binding
}

var defaultKeymap = keymap{
	toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset and log"),
	),
	log: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "log session"),
	),
	category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "category"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add category"),
	),
	increase: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "longer"),
	),
	decrease: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "shorter"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) shortHelp() []key.Binding {
	return []key.Binding{
		k.toggle,
		k.reset,
		k.log,
		k.category,
		k.add,
		k.increase,
		k.decrease,
		k.quit,
	}
}

// formKeymap lets esc close a form without quitting the program.
func formKeymap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)

	return km
}
