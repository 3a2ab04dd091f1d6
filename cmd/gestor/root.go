package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dori/gestor/internal/app"
	"github.com/dori/gestor/internal/config"
	"github.com/dori/gestor/internal/store"
	"github.com/spf13/cobra"
)

// env is what the commands need from the outside world
type env struct {
	loadConfig func() (*config.Config, error)
	appOpts    []app.Option
	tui        func(*app.App) error
}

func defaultEnv() *env {
	return &env{
		loadConfig: config.Load,
		tui:        runTUI,
	}
}

func newRootCmd(e *env) *cobra.Command {
	var dataDir, themeName string

	// open loads the config, applies flag overrides and starts the app
	open := func() (*app.App, error) {
		cfg, err := e.loadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if themeName != "" {
			cfg.Theme = themeName
		}
		return app.New(cfg, e.appOpts...)
	}

	// with runs fn against an open app and closes it afterwards
	with := func(fn func(a *app.App) error) error {
		a, err := open()
		if err != nil {
			return err
		}
		err = fn(a)
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	}

	cmd := &cobra.Command{
		Use:   "gestor",
		Short: "Manage projects and tasks from the terminal",
		Long: `gestor keeps accounts, projects and tasks in a local database.

Run without arguments to start the interactive board, or use the
subcommands for scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(e.tui)
		},
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (overrides config)")
	cmd.PersistentFlags().StringVar(&themeName, "theme", "", "Theme name (nord, dracula, gruvbox, catppuccin)")

	cmd.AddCommand(
		registerCmd(with),
		loginCmd(with),
		taskCmd(with),
		projectCmd(with),
		resetCmd(with),
		versionCmd(),
	)
	return cmd
}

type runner func(fn func(a *app.App) error) error

// opError carries a rejected store operation; its text is the display message
type opError struct {
	err error
}

func (e opError) Error() string { return store.Message(e.err) }

func (e opError) Unwrap() error { return e.err }

func rejected(err error) error {
	if err == nil {
		return nil
	}
	var oe opError
	if errors.As(err, &oe) {
		return err
	}
	return opError{err: err}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gestor v%s\n", version)
		},
	}
}
