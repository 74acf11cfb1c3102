// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"tenper-cli/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `tenper config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tenper configuration",
		Long: `Manage tenper configuration.

Configuration is stored in:
  - Linux: ~/.config/tenper/config.cue
  - macOS: ~/Library/Application Support/tenper/config.cue
  - Windows: %APPDATA%\tenper\config.cue

Every key can be overridden with a TENPER_ environment variable, for
example TENPER_TMUX_BINARY or TENPER_UI_PAUSE_ON_ATTACH.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.handle(cmd, showConfig(cmd, app))
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configFilePath(app)
			if err != nil {
				return app.handle(cmd, err)
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, created, err := config.CreateDefaultConfig()
			if err != nil {
				return app.handle(cmd, err)
			}
			if !created {
				fmt.Fprintf(app.stdout, "%s %s\n", WarningStyle.Render("Config file already exists:"), path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created config file:"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(app.cfg))
			return nil
		},
	})

	return cfgCmd
}

// configFilePath returns the file configuration is read from: the --config
// value when given, the default location otherwise.
func configFilePath(app *App) (string, error) {
	if app.flags.configPath != "" {
		return app.flags.configPath, nil
	}
	return config.ConfigFilePath()
}

func showConfig(cmd *cobra.Command, app *App) error {
	res, err := config.LoadWithSource(cmd.Context(), config.LoadOptions{ConfigFilePath: app.flags.configPath})
	if err != nil {
		return err
	}
	cfg := res.Config

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	out := app.stdout

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	source := SubtitleStyle.Render("(using defaults)")
	if res.Path != "" {
		source = res.Path
	}
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), source)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("configs_dir"), valueStyle.Render(cfg.ConfigsDir))
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("virtualenvs_dir"), valueStyle.Render(cfg.VirtualenvsDir))
	editor := SubtitleStyle.Render("(unset, $EDITOR or vi)")
	if cfg.Editor != "" {
		editor = valueStyle.Render(cfg.Editor)
	}
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("editor"), editor)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("tmux"))
	fmt.Fprintf(out, "  binary: %s\n", valueStyle.Render(cfg.Tmux.Binary))
	fmt.Fprintf(out, "  force_256_colors: %s\n", valueStyle.Render(strconv.FormatBool(cfg.Tmux.Force256Colors)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("virtualenv"))
	fmt.Fprintf(out, "  binary: %s\n", valueStyle.Render(cfg.Virtualenv.Binary))
	fmt.Fprintf(out, "  default_python: %s\n", valueStyle.Render(cfg.Virtualenv.DefaultPython))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))
	fmt.Fprintf(out, "  pause_on_attach: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.PauseOnAttach)))

	return nil
}
