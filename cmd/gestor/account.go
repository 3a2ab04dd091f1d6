package main

import (
	"fmt"

	"github.com/dori/gestor/internal/app"
	"github.com/dori/gestor/internal/model"
	"github.com/dori/gestor/internal/store"
	"github.com/spf13/cobra"
)

func registerCmd(with runner) *cobra.Command {
	var r model.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: `Create an account. All fields are required and the two passwords must match.

Example:
  gestor register --username=ana --password=secret --confirm=secret \
    --name="Ana Pérez" --email=ana@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(func(a *app.App) error {
				if _, err := a.Accounts.Register(r); err != nil {
					return rejected(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), store.MsgRegistered)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&r.Username, "username", "", "Username")
	cmd.Flags().StringVar(&r.Password, "password", "", "Password")
	cmd.Flags().StringVar(&r.ConfirmPassword, "confirm", "", "Password again")
	cmd.Flags().StringVar(&r.DisplayName, "name", "", "Display name")
	cmd.Flags().StringVar(&r.Email, "email", "", "Email address")
	return cmd
}

func loginCmd(with runner) *cobra.Command {
	var c model.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check a username and password",
		Long: `Check a username and password against the registered accounts.
Nothing about the session is kept; other commands do not need a login.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(func(a *app.App) error {
				name, err := a.Accounts.Login(c.Username, c.Password)
				if err != nil {
					return rejected(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Welcome, %s\n", store.MsgLoggedIn, name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&c.Username, "username", "", "Username")
	cmd.Flags().StringVar(&c.Password, "password", "", "Password")
	return cmd
}
