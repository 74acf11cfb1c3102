// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"tenper-cli/internal/project"
	"tenper-cli/internal/tui"

	"github.com/spf13/cobra"
)

func newDeleteCommand(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <project>",
		Short: "Delete a project file",
		Long: `Delete a project's file from the configs directory.

When a virtualenv for the project exists on disk, at its configured path or at
the default location, you are asked whether to delete it too; answer yes or y. The configs directory itself is removed once empty.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjects(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handle(cmd, deleteProject(app, args[0], yes))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete the virtualenv without asking")

	return cmd
}

func deleteProject(app *App, name string, assumeYes bool) error {
	store := app.store()
	if !store.Exists(name) {
		// Load reports the missing file with the path it checked.
		_, err := store.Load(name)
		return err
	}

	proj, err := app.loadProject(name)
	if err != nil {
		// A broken file can still be deleted; look for the virtualenv where
		// it would live by default.
		app.logger.Warn("project file is invalid", "project", name, "error", err)
		proj = &project.Project{SessionName: name, Virtualenv: &project.Virtualenv{}}
	}

	if !proj.HasVirtualenv() {
		// The block may have been dropped after the virtualenv was built;
		// offer to clean up the default location too.
		proj = &project.Project{SessionName: proj.SessionName, Virtualenv: &project.Virtualenv{}}
	}

	prov := app.provisioner(app.runner())
	if prov.Exists(proj) {
		venv := prov.Path(proj)

		remove := assumeYes
		if !remove {
			remove, err = tui.Confirm(tui.ConfirmOptions{
				Title:  fmt.Sprintf("There's a virtualenv for this project in %s. Do you want to delete it?", venv),
				Config: app.Prompt,
			})
			if errors.Is(err, tui.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
		}

		if remove {
			if err := prov.Remove(venv); err != nil {
				return err
			}
			if !app.flags.dryRun {
				fmt.Fprintf(app.stdout, "Deleted %s.\n", venv)
			}
		}
	}

	if app.flags.dryRun {
		fmt.Fprintf(app.stdout, "Would remove %s.\n", store.Path(name))
		return nil
	}

	path, err := store.Remove(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "Removed %s.\n", path)
	return nil
}
