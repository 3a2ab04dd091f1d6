package ui

import (
	"github.com/dori/gestor/internal/store"
)

// Screen is the top-level screen shown
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenBoard
)

// String returns the display name for a screen
func (s Screen) String() string {
	switch s {
	case ScreenAuth:
		return "Login"
	case ScreenBoard:
		return "Board"
	default:
		return "Unknown"
	}
}

// Pane is the collection shown on the board
type Pane int

const (
	PaneTasks Pane = iota
	PaneProjects
)

// String returns the display name for a pane
func (p Pane) String() string {
	switch p {
	case PaneTasks:
		return "Tasks"
	case PaneProjects:
		return "Projects"
	default:
		return "Unknown"
	}
}

// Key returns the storage key of the collection behind the pane
func (p Pane) Key() string {
	if p == PaneProjects {
		return store.ProjectsKey
	}
	return store.TasksKey
}

// Other returns the pane not currently shown
func (p Pane) Other() Pane {
	if p == PaneTasks {
		return PaneProjects
	}
	return PaneTasks
}

// pendingDelete is a delete waiting on a y/n answer
type pendingDelete struct {
	pane   Pane
	id     int
	prompt string
}
