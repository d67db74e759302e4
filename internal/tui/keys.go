package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Add         key.Binding
	Toggle      key.Binding
	Edit        key.Binding
	Delete      key.Binding
	CompleteAll key.Binding
	Undo        key.Binding
	DeleteAll   key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Enter       key.Binding
	Help        key.Binding
	Quit        key.Binding
	Escape      key.Binding
}

var keys = keyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Add:         key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add")),
	Toggle:      key.NewBinding(key.WithKeys("x", " ", "enter"), key.WithHelp("x", "done")),
	Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "del")),
	CompleteAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "complete all")),
	Undo:        key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	DeleteAll:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete all")),
	Confirm:     key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y/enter", "confirm")),
	Cancel:      key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "cancel")),
	Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// helpLine joins the short help of bindings as "k:desc" pairs
func helpLine(bindings ...key.Binding) string {
	s := ""
	for i, b := range bindings {
		if i > 0 {
			s += "  "
		}
		h := b.Help()
		s += h.Key + ":" + h.Desc
	}
	return s
}
