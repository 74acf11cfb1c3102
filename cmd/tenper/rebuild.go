// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"tenper-cli/internal/issue"

	"github.com/spf13/cobra"
)

var errNoVirtualenv = errors.New("project has no virtualenv")

func newRebuildCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "rebuild <project>",
		Short:             "Delete and recreate a project's virtualenv",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjects(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handle(cmd, rebuildProject(cmd.Context(), app, args[0]))
		},
	}
}

func rebuildProject(ctx context.Context, app *App, name string) error {
	proj, err := app.loadProject(name)
	if err != nil {
		return err
	}

	if !proj.HasVirtualenv() {
		return issue.NewErrorContext().
			WithOperation("rebuild virtualenv").
			WithResource(name).
			WithSuggestion(fmt.Sprintf("Add a 'virtualenv' section with 'tenper edit %s'", name)).
			Wrap(errNoVirtualenv).
			BuildError()
	}

	return app.provisioner(app.runner()).Ensure(ctx, proj, true)
}
