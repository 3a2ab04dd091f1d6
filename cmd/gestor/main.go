package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/gestor/internal/app"
	"github.com/dori/gestor/internal/ui"
	"github.com/dori/gestor/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	if err := newRootCmd(defaultEnv()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(a *app.App) error {
	if t, ok := theme.ByName(a.Config.Theme); ok {
		theme.SetTheme(t)
	}

	p := tea.NewProgram(
		ui.NewRootModel(a),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
