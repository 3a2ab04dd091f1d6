package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dori/gestor/internal/model"
	"github.com/dori/gestor/internal/ui/theme"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(headers ...string) *table.Table {
	t := theme.Current.Theme
	header := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

func printTasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	tbl := newTable("ID", "NAME", "PROJECT", "DUE", "STATUS")
	for _, t := range tasks {
		tbl.Row(fmt.Sprint(t.ID), t.Name, t.Project, t.DueDate, t.Status.Label())
	}
	fmt.Fprintln(w, tbl.Render())
}

func printProjects(w io.Writer, projects []model.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects.")
		return
	}
	tbl := newTable("ID", "NAME", "MEMBERS", "PHONE", "START", "END", "DESCRIPTION")
	for _, p := range projects {
		tbl.Row(fmt.Sprint(p.ID), p.Name, p.Members, p.Phone, p.StartDate, p.EndDate, p.Description)
	}
	fmt.Fprintln(w, tbl.Render())
}
