// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long: `List the projects in the configs directory, one name per line.

With --long, each project file is read and shown with its session name,
virtualenv location and project root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.handle(cmd, listProjects(app, long))
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show session, virtualenv and root of every project")

	return cmd
}

func listProjects(app *App, long bool) error {
	store := app.store()
	names, err := store.List()
	if err != nil {
		return err
	}

	if !long {
		for _, name := range names {
			fmt.Fprintln(app.stdout, name)
		}
		return nil
	}

	if len(names) == 0 {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("No projects in "+store.Dir()))
		return nil
	}

	prov := app.provisioner(app.runner())
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		proj, err := app.loadProject(name)
		if err != nil {
			app.logger.Warn("skipping unreadable project", "project", name, "error", err)
			rows = append(rows, []string{name, ErrorStyle.Render("invalid"), "", ""})
			continue
		}

		venv := "-"
		if proj.HasVirtualenv() {
			venv = prov.Path(proj)
		}
		rows = append(rows, []string{name, proj.SessionName, venv, proj.ProjectRoot})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("PROJECT", "SESSION", "VIRTUALENV", "ROOT").
		Rows(rows...)

	fmt.Fprintln(app.stdout, t.Render())
	return nil
}
