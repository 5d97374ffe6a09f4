package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit        key.Binding
	help        key.Binding
	config      key.Binding
	up          key.Binding
	down        key.Binding
	accept      key.Binding
	back        key.Binding
	filter      key.Binding
	mark        key.Binding
	unmark      key.Binding
	whitelist   key.Binding
	notes       key.Binding
	vote        key.Binding
	launch      key.Binding
	quitGame    key.Binding
	toggleCol   key.Binding
	reverseSort key.Binding
}

var defaultKeyMap = keyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit")),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help")),
	config: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "Conf")),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up")),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down")),
	accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select")),
	back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back")),
	filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "Matches only")),
	mark: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Mark")),
	unmark: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "Unmark")),
	whitelist: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "Whitelist")),
	notes: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "Notes")),
	vote: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "Vote kick")),
	launch: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "Launch game")),
	quitGame: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "Quit game")),
	toggleCol: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "Columns")),
	reverseSort: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reverse sort")),
}
