// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// completionWords are the subcommands listed by 'tenper completions'.
var completionWords = []string{"list", "edit", "rebuild", "delete"}

// newCompletionsCommand creates `tenper completions`, which prints every word
// a shell may complete as the first argument on a single line.
func newCompletionsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "completions",
		Short: "Print subcommands and project names for shell completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := app.store().List()
			if err != nil {
				return app.handle(cmd, err)
			}
			words := append(append([]string{}, completionWords...), names...)
			fmt.Fprintln(app.stdout, strings.Join(words, " "))
			return nil
		},
	}
}

// newCompletionCommand creates the `tenper completion` command.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tenper.

` + SubtitleStyle.Render("Bash:") + `
  # Add to ~/.bashrc:
  eval "$(tenper completion bash)"

` + SubtitleStyle.Render("Zsh:") + `
  # Add to ~/.zshrc:
  eval "$(tenper completion zsh)"

` + SubtitleStyle.Render("Fish:") + `
  tenper completion fish > ~/.config/fish/completions/tenper.fish

` + SubtitleStyle.Render("PowerShell:") + `
  tenper completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
