package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	ToggleTheme key.Binding

	NextField  key.Binding
	PrevField  key.Binding
	OptionPrev key.Binding
	OptionNext key.Binding
	Submit     key.Binding
	Newline    key.Binding

	Previous key.Binding
	Next     key.Binding
	Select   key.Binding
	Copy     key.Binding
	Save     key.Binding
	Skip     key.Binding
	NewStory key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding

	Retry key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),

		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		OptionPrev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous option")),
		OptionNext: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate story")),
		Newline:    key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "new line")),

		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Select:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "select")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy story")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save illustration")),
		Skip:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "reveal all")),
		NewStory: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "generate another story")),
		ScrollUp: key.NewBinding(key.WithKeys("up", "k", "pgup")),
		ScrollDn: key.NewBinding(key.WithKeys("down", "j", "pgdown")),

		Retry: key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "try again")),
	}
}
