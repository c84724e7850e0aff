package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browse mode bindings
type keyMap struct {
	Quit           key.Binding
	Up             key.Binding
	Down           key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Home           key.Binding
	End            key.Binding
	Delete         key.Binding
	Rename         key.Binding
	Enter          key.Binding
	Back           key.Binding
	Search         key.Binding
	NextMatch      key.Binding
	PrevMatch      key.Binding
	ExitSearch     key.Binding
	CopyPath       key.Binding
	ToggleSort     key.Binding
	AddBookmark    key.Binding
	RemoveBookmark key.Binding
	Bookmarks      key.Binding
	Open           key.Binding
	Reload         key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first entry"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last entry"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Enter: key.NewBinding(
		key.WithKeys("l", "enter", "right"),
		key.WithHelp("l", "enter directory"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h", "parent directory"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextMatch: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	PrevMatch: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous match"),
	),
	ExitSearch: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "exit search"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	ToggleSort: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "sort by mtime"),
	),
	AddBookmark: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "bookmark dir"),
	),
	RemoveBookmark: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "unbookmark dir"),
	),
	Bookmarks: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bookmarks"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open file"),
	),
	Reload: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reload"),
	),
}
