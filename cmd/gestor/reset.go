package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dori/gestor/internal/app"
	"github.com/dori/gestor/internal/store"
	"github.com/spf13/cobra"
)

// collections maps command line names to storage keys
var collections = map[string]string{
	"accounts": store.AccountsKey,
	"tasks":    store.TasksKey,
	"projects": store.ProjectsKey,
}

func collectionNames() []string {
	names := make([]string, 0, len(collections))
	for name := range collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resetCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "reset [accounts|tasks|projects]...",
		Short:     "Restore collections to their initial contents",
		Long:      "Drop the stored collections and load them again. Tasks and projects come back with the sample records; accounts come back empty.",
		ValidArgs: collectionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			names := args
			if all {
				names = collectionNames()
			}
			if len(names) == 0 {
				return fmt.Errorf("name a collection (%s) or pass --all", strings.Join(collectionNames(), ", "))
			}
			for _, name := range names {
				if _, ok := collections[name]; !ok {
					return fmt.Errorf("unknown collection %q", name)
				}
			}

			prompt := fmt.Sprintf("Reset %s? Current records will be lost.", strings.Join(names, ", "))
			if !confirmer(cmd)(prompt) {
				fmt.Fprintln(cmd.OutOrStdout(), store.MsgCancelled)
				return nil
			}

			return with(func(a *app.App) error {
				for _, name := range names {
					if err := a.Reset(collections[name]); err != nil {
						return rejected(err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Reset %s.\n", name)
				}
				return nil
			})
		},
	}
	cmd.Flags().Bool("all", false, "Reset every collection")
	cmd.Flags().Bool("force", false, "Reset without asking")
	return cmd
}
