package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	search   key.Binding
	filter   key.Binding
	refresh  key.Binding
	delete   key.Binding
	copy     key.Binding
	selectJb key.Binding
	batch    key.Binding
	settings key.Binding
	status   key.Binding
	messaged key.Binding
	inbox    key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	search:   key.NewBinding(key.WithKeys("s")),
	filter:   key.NewBinding(key.WithKeys("/")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	selectJb: key.NewBinding(key.WithKeys(" ")),
	batch:    key.NewBinding(key.WithKeys("b")),
	settings: key.NewBinding(key.WithKeys("o")),
	status:   key.NewBinding(key.WithKeys("t")),
	messaged: key.NewBinding(key.WithKeys("m")),
	inbox:    key.NewBinding(key.WithKeys("i")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
