package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard bindings of the presenter.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	First      key.Binding
	Last       key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Search     key.Binding
	NextMatch  key.Binding
	PrevMatch  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "down", " ", "pgdown"),
			key.WithHelp("→/space", "次のスライド"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "pgup"),
			key.WithHelp("←", "前のスライド"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "最初のスライド"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "最後のスライド"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "半ページ下へ"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "半ページ上へ"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "検索"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "次の一致"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "前の一致"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ヘルプ"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "終了"),
		),
	}
}
