// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the tenper command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tenper <project>",
		Short: "Start tmux sessions for your projects",
		Long: TitleStyle.Render("tenper") + SubtitleStyle.Render(" - tmux sessions with optional virtualenvs") + `

tenper reads a project file from the configs directory, makes sure the
project's virtualenv exists, builds the tmux session described by the
file and attaches you to it. Starting a project whose session is already
running just attaches.

` + SubtitleStyle.Render("Examples:") + `
  tenper edit web        Create or edit the 'web' project
  tenper web             Start (or re-attach to) the 'web' session
  tenper -n web          Print the tmux commands without running them
  tenper list --long     Show every project
  tenper rebuild web     Recreate the project's virtualenv
  tenper delete web      Remove the project file (and maybe its virtualenv)`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeProjects(app),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.load(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return app.handle(cmd, startProject(cmd.Context(), app, args[0]))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/tenper/config.cue)")
	flags.BoolVarP(&app.flags.dryRun, "dry-run", "n", false, "print external commands instead of running them")

	rootCmd.AddCommand(
		newListCommand(app),
		newEditCommand(app),
		newRebuildCommand(app),
		newDeleteCommand(app),
		newCompletionsCommand(app),
		newCompletionCommand(),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the tenper command tree. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// errorHandler prints errors that were not already reported by App.handle.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
