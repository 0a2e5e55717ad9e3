package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines global key bindings used across the TUI.
type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	NextHand  key.Binding
	PrevHand  key.Binding
	DragLeft  key.Binding
	DragRight key.Binding
	MarkIn    key.Binding
	MarkOut   key.Binding
	MarkClear key.Binding
	Accept    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		NextHand: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next handle"),
		),
		PrevHand: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous handle"),
		),
		DragLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "nudge handle left"),
		),
		DragRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "nudge handle right"),
		),
		MarkIn: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark in at cursor"),
		),
		MarkOut: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "mark out at cursor"),
		),
		MarkClear: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "clear marks"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept selection"),
		),
	}
}
