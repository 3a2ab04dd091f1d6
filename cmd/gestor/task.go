package main

import (
	"fmt"
	"strings"

	"github.com/dori/gestor/internal/app"
	"github.com/dori/gestor/internal/model"
	"github.com/dori/gestor/internal/store"
	"github.com/spf13/cobra"
)

func taskCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "List and change tasks",
	}
	cmd.AddCommand(
		taskListCmd(with),
		taskAddCmd(with),
		taskEditCmd(with),
		taskDoneCmd(with),
		taskDeleteCmd(with),
	)
	return cmd
}

// parseStatus accepts the stored value or the display label in any case.
// Unknown text is passed through for validation to reject.
func parseStatus(s string) model.Status {
	s = strings.TrimSpace(s)
	for _, st := range model.Statuses() {
		if strings.EqualFold(s, string(st)) || strings.EqualFold(s, st.Label()) {
			return st
		}
	}
	return model.Status(s)
}

func taskFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Task name")
	cmd.Flags().String("project", "", "Project label")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("status", "", "Status (Pending, InProgress, Completed)")
}

// mergeTaskFlags overwrites the draft with every flag given on the command line
func mergeTaskFlags(cmd *cobra.Command, d model.TaskDraft) model.TaskDraft {
	flags := cmd.Flags()
	if flags.Changed("name") {
		d.Name, _ = flags.GetString("name")
	}
	if flags.Changed("project") {
		d.Project, _ = flags.GetString("project")
	}
	if flags.Changed("due") {
		d.DueDate, _ = flags.GetString("due")
	}
	if flags.Changed("status") {
		s, _ := flags.GetString("status")
		d.Status = parseStatus(s)
	}
	return d
}

func taskListCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			statusFilter, _ := cmd.Flags().GetString("status")

			return with(func(a *app.App) error {
				tasks := a.Tasks.Tasks()
				if statusFilter != "" {
					want := parseStatus(statusFilter)
					filtered := tasks[:0]
					for _, t := range tasks {
						if t.Status == want {
							filtered = append(filtered, t)
						}
					}
					tasks = filtered
				}

				if jsonOutput {
					return writeJSON(cmd.OutOrStdout(), tasks)
				}
				printTasks(cmd.OutOrStdout(), tasks)
				return nil
			})
		},
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().String("status", "", "Only show tasks with this status")
	return cmd
}

func taskAddCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long: `Add a task. Name, project and due date are required; status defaults to Pending.

Example:
  gestor task add --name="Write docs" --project="CRM Web App" --due=2025-07-01
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(func(a *app.App) error {
				task, err := a.Tasks.Create(mergeTaskFlags(cmd, model.EmptyTaskDraft()))
				if err != nil {
					return rejected(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (ID: %d)\n", store.MsgTaskSaved, task.ID)
				return nil
			})
		},
	}
	taskFlags(cmd)
	return cmd
}

func taskEditCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Long: `Change fields of a task. Only the flags given are changed.

Example:
  gestor task edit 2 --status=InProgress
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return with(func(a *app.App) error {
				current, ok := a.Tasks.Get(id)
				if !ok {
					return rejected(fmt.Errorf("task %d: %w", id, store.ErrNotFound))
				}
				if _, err := a.Tasks.Update(id, mergeTaskFlags(cmd, current.Draft())); err != nil {
					return rejected(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), store.MsgTaskSaved)
				return nil
			})
		},
	}
	taskFlags(cmd)
	return cmd
}

func taskDoneCmd(with runner) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return with(func(a *app.App) error {
				if _, ok := a.Tasks.Get(id); !ok {
					return rejected(fmt.Errorf("task %d: %w", id, store.ErrNotFound))
				}
				if err := a.Tasks.Complete(id); err != nil {
					return rejected(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), store.MsgTaskCompleted)
				return nil
			})
		},
	}
}

func taskDeleteCmd(with runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return with(func(a *app.App) error {
				deleted, err := a.Tasks.Delete(id, confirmer(cmd))
				if err != nil {
					return rejected(err)
				}
				if !deleted {
					fmt.Fprintln(cmd.OutOrStdout(), store.MsgCancelled)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), store.MsgTaskDeleted)
				return nil
			})
		},
	}
	cmd.Flags().Bool("force", false, "Delete without asking")
	return cmd
}
