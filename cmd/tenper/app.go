// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"tenper-cli/internal/config"
	"tenper-cli/internal/project"
	"tenper-cli/internal/provision"
	"tenper-cli/internal/runtime"
	"tenper-cli/internal/session"
	"tenper-cli/internal/tmux"
	"tenper-cli/internal/tui"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App and builds
	// the project store, tmux client and provisioner through it.
	App struct {
		Config config.Provider
		// Runner executes external commands. Dry runs replace it with a
		// runner that prints the commands instead.
		Runner runtime.Runner
		Getenv func(string) string
		Prompt tui.Config

		stdout io.Writer
		stderr io.Writer

		flags  globalFlags
		cfg    *config.Config
		logger *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Runner runtime.Runner
		Getenv func(string) string
		Prompt *tui.Config
		Stdout io.Writer
		Stderr io.Writer
	}

	globalFlags struct {
		verbose    bool
		dryRun     bool
		configPath string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}
	prompt := tui.DefaultConfig()
	if deps.Prompt != nil {
		prompt = *deps.Prompt
	}

	logger := log.NewWithOptions(deps.Stderr, log.Options{Prefix: config.AppName})

	return &App{
		Config: deps.Config,
		Runner: deps.Runner,
		Getenv: deps.Getenv,
		Prompt: prompt,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
		logger: logger,
	}
}

// load reads the global configuration. A broken config file is reported and
// the defaults are used so that every command stays usable.
func (a *App) load(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configPath})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	if cfg.UI.Verbose {
		a.flags.verbose = true
	}
	if a.flags.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
}

// store returns the project store for the configured directory.
func (a *App) store() *project.Store {
	return project.NewStore(a.cfg.ConfigsDir)
}

// runner returns the runner for external commands: the injected or native
// one, or a printing runner in dry-run mode.
func (a *App) runner() runtime.Runner {
	if a.flags.dryRun {
		return session.PlanRunner(a.stdout)
	}
	if a.Runner != nil {
		return a.Runner
	}
	return runtime.NewNativeRunner(a.logger)
}

func (a *App) tmuxClient(runner runtime.Runner) *tmux.Client {
	return tmux.NewClient(tmux.OptionsFrom(a.cfg, a.Getenv), runner)
}

func (a *App) provisioner(runner runtime.Runner) *provision.Provisioner {
	cfg := provision.ConfigFrom(a.cfg, provision.WithDryRun(a.flags.dryRun))
	return provision.NewProvisioner(cfg, runner, a.logger)
}

// loadProject reads a project file and expands environment references in it.
func (a *App) loadProject(name string) (*project.Project, error) {
	proj, err := a.store().Load(name)
	if err != nil {
		return nil, err
	}
	return proj.Expand(a.Getenv)
}
