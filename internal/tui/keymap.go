package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	StartPause   key.Binding
	Reset        key.Binding
	PrevDuration key.Binding
	NextDuration key.Binding
	CycleBreak   key.Binding
	FocusNext    key.Binding
	AddTask      key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
	Up           key.Binding
	Down         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		StartPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		PrevDuration: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "shorter session"),
		),
		NextDuration: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "longer session"),
		),
		CycleBreak: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "cycle break"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch panel"),
		),
		AddTask: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle task"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "task up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "task down"),
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

// ShortHelp is the single-line hint bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartPause, k.Reset, k.NextDuration, k.AddTask, k.Help, k.Quit}
}

// FullHelp is the expanded help shown by ?.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartPause, k.Reset, k.Quit},
		{k.PrevDuration, k.NextDuration, k.CycleBreak},
		{k.FocusNext, k.AddTask, k.Confirm, k.Up, k.Down},
	}
}
