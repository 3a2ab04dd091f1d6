package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Record actions
	Add      key.Binding
	Edit     key.Binding
	Complete key.Binding
	Delete   key.Binding

	// Panes
	TasksPane    key.Binding
	ProjectsPane key.Binding
	SwitchPane   key.Binding

	// Forms
	NextField  key.Binding
	PrevField  key.Binding
	NextChoice key.Binding
	PrevChoice key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	ToggleMode key.Binding

	// Confirmation
	Yes key.Binding
	No  key.Binding

	// General
	Logout key.Binding
	Help   key.Binding
	Quit   key.Binding
	Abort  key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),

		TasksPane: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "tasks"),
		),
		ProjectsPane: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "projects"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		NextChoice: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next status"),
		),
		PrevChoice: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev status"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "login/register"),
		),

		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),

		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log out"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Complete, k.Delete, k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.TasksPane, k.ProjectsPane, k.SwitchPane},
		{k.Add, k.Edit, k.Complete, k.Delete},
		{k.Logout, k.Help, k.Quit},
	}
}

// formKeys is the help shown while a form has focus
type formKeys struct {
	k       KeyMap
	choices bool
	auth    bool
}

func (f formKeys) ShortHelp() []key.Binding {
	b := []key.Binding{f.k.NextField, f.k.PrevField}
	if f.choices {
		b = append(b, f.k.PrevChoice, f.k.NextChoice)
	}
	b = append(b, f.k.Submit)
	if f.auth {
		return append(b, f.k.ToggleMode, f.k.Abort)
	}
	return append(b, f.k.Cancel)
}

func (f formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}
