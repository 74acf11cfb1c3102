// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"tenper-cli/internal/issue"
	"tenper-cli/internal/runtime"

	"github.com/spf13/cobra"
)

// handle turns a handler error into what Cobra should see. Failures of
// external commands become a silent ExitError carrying their status, since
// the command already reported on the terminal. Actionable errors are
// rendered here together with their catalog entry.
func (a *App) handle(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		a.renderError(err)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: exitCodeOf(err), Err: err}
	}

	var statusErr *runtime.ExitStatusError
	if errors.As(err, &statusErr) {
		if statusErr.Stderr != "" {
			fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+statusErr.Stderr)
		}
		a.logger.Debug("command failed", "cmd", statusErr.Command, "exit", statusErr.Code)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: exitCodeOf(err), Err: err}
	}

	cmd.SilenceUsage = true
	return err
}

// renderError prints err and, when it links a catalog issue, the issue's
// Markdown explanation.
func (a *App) renderError(err error) {
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.flags.verbose))

	entry := issue.IssueOf(err)
	if entry == nil {
		return
	}
	a.renderIssue(entry)
}

func (a *App) renderIssue(entry *issue.Issue) {
	rendered, err := entry.Render(a.cfg.UI.ColorScheme.GlamourStyle())
	if err != nil {
		a.logger.Warn("failed to render issue", "issue", entry.Id(), "error", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// formatErrorForDisplay formats an error for user display. Actionable errors
// use their own format; verbose mode shows the full chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
