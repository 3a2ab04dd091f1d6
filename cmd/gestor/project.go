package main

import (
	"fmt"

	"github.com/dori/gestor/internal/app"
	"github.com/dori/gestor/internal/model"
	"github.com/dori/gestor/internal/store"
	"github.com/spf13/cobra"
)

func projectCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "List and change projects",
	}
	cmd.AddCommand(
		projectListCmd(with),
		projectAddCmd(with),
		projectEditCmd(with),
		projectDeleteCmd(with),
	)
	return cmd
}

func projectFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().String("members", "", "Members, comma separated")
	cmd.Flags().String("phone", "", "Contact phone")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().String("description", "", "Description")
}

// mergeProjectFlags overwrites the draft with every flag given on the command line
func mergeProjectFlags(cmd *cobra.Command, d model.ProjectDraft) model.ProjectDraft {
	fields := map[string]*string{
		"name":        &d.Name,
		"members":     &d.Members,
		"phone":       &d.Phone,
		"start":       &d.StartDate,
		"end":         &d.EndDate,
		"description": &d.Description,
	}
	for flag, dst := range fields {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
		}
	}
	return d
}

func projectListCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			return with(func(a *app.App) error {
				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), a.Projects.Projects())
				}
				printProjects(cmd.OutOrStdout(), a.Projects.Projects())
				return nil
			})
		},
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

func projectAddCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Long: `Add a project. Every field is required.

Example:
  gestor project add --name="Audit" --members="Luis, Eva" --phone=0977777777 \
    --start=2025-08-01 --end=2025-09-01 --description="Yearly audit."
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(func(a *app.App) error {
				p, err := a.Projects.Create(mergeProjectFlags(cmd, model.ProjectDraft{}))
				if err != nil {
					return rejected(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (ID: %d)\n", store.MsgProjectSaved, p.ID)
				return nil
			})
		},
	}
	projectFlags(cmd)
	return cmd
}

func projectEditCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return with(func(a *app.App) error {
				current, ok := a.Projects.Get(id)
				if !ok {
					return rejected(fmt.Errorf("project %d: %w", id, store.ErrNotFound))
				}
				if _, err := a.Projects.Update(id, mergeProjectFlags(cmd, current.Draft())); err != nil {
					return rejected(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), store.MsgProjectSaved)
				return nil
			})
		},
	}
	projectFlags(cmd)
	return cmd
}

func projectDeleteCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Long:  "Delete a project. Tasks that name it keep their project label.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return with(func(a *app.App) error {
				deleted, err := a.Projects.Delete(id, confirmer(cmd))
				if err != nil {
					return rejected(err)
				}
				if !deleted {
					fmt.Fprintln(cmd.OutOrStdout(), store.MsgCancelled)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), store.MsgProjectDeleted)
				return nil
			})
		},
	}
	cmd.Flags().Bool("force", false, "Delete without asking")
	return cmd
}
