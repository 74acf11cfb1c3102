// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"tenper-cli/internal/issue"
	"tenper-cli/internal/session"
	"tenper-cli/internal/tui"

	"github.com/spf13/cobra"
)

// startProject builds or re-attaches to the project's session.
func startProject(ctx context.Context, app *App, name string) error {
	proj, err := app.loadProject(name)
	if err != nil {
		return err
	}

	runner := app.runner()
	launcher := session.NewLauncher(app.tmuxClient(runner), app.provisioner(runner),
		session.WithLogger(app.logger),
		session.WithPause(app.pause),
	)

	err = launcher.Start(ctx, proj)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tui.ErrCancelled):
		return nil
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return err
	}
	return issue.NewErrorContext().
		WithOperation("start session").
		WithResource(proj.SessionName).
		WithSuggestion(fmt.Sprintf("Run 'tenper --dry-run %s' to see the commands tenper issues", name)).
		WithIssue(issue.SessionFailedId).
		Wrap(err).
		BuildError()
}

// pause announces a re-attach and waits for the user unless pausing is
// turned off.
func (a *App) pause(message string) error {
	if a.flags.dryRun || !a.cfg.UI.PauseOnAttach {
		fmt.Fprintln(a.stderr, message)
		return nil
	}
	return tui.Pause(a.Prompt, message)
}

// completeProjects offers project names as the first positional argument.
func completeProjects(app *App) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		app.load(context.Background())
		names, err := app.store().List()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
