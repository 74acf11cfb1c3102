// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tenper-cli/internal/issue"
	"tenper-cli/internal/runtime"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/shell"
)

const defaultEditor = "vi"

var errNoEditor = errors.New("editor command is empty")

func newEditCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <project>",
		Short: "Create or edit a project file",
		Long: `Open the project's file in your editor, creating it from a commented
template first when it does not exist.

The editor is taken from $EDITOR, then the 'editor' config setting, then vi.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjects(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handle(cmd, editProject(cmd.Context(), app, args[0]))
		},
	}
}

func editProject(ctx context.Context, app *App, name string) error {
	store := app.store()

	var path string
	if app.flags.dryRun && !store.Exists(name) {
		path = store.Path(name)
		fmt.Fprintf(app.stdout, "Would create %s.\n", path)
	} else {
		p, created, err := store.Create(name)
		if err != nil {
			return err
		}
		if created {
			app.logger.Info("created project file", "path", p)
		}
		path = p
	}

	line := app.editorCommandLine()
	argv, err := shell.Fields(line, app.Getenv)
	if err == nil && len(argv) == 0 {
		err = errNoEditor
	}
	if err != nil {
		return editorError(path, line, err)
	}

	editor := runtime.NewCommand(argv[0], append(argv[1:], path)...)
	res := app.runner().RunInteractive(ctx, editor)
	if res.Error != nil {
		return editorError(path, line, res.Error)
	}
	// The editor's own exit status is passed through.
	return res.Err()
}

func editorError(path, editor string, err error) error {
	return issue.NewErrorContext().
		WithOperation("open editor").
		WithResource(path).
		WithSuggestion(fmt.Sprintf("Check that '%s' is installed", editor)).
		WithSuggestion("Set $EDITOR, or 'editor' in the tenper config, to an installed editor").
		WithIssue(issue.EditorFailedId).
		Wrap(err).
		BuildError()
}

// editorCommandLine resolves the editor command line: $EDITOR, then the
// configured editor, then vi. The line is split with shell word rules so
// values like "code --wait" work.
func (a *App) editorCommandLine() string {
	for _, candidate := range []string{a.Getenv("EDITOR"), a.cfg.Editor} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return defaultEditor
}
