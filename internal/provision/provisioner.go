// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tenper-cli/internal/issue"
	"tenper-cli/internal/project"
	"tenper-cli/internal/runtime"

	"github.com/charmbracelet/log"
)

// Provisioner manages project virtualenvs.
type Provisioner struct {
	cfg    *Config
	runner runtime.Runner
	logger *log.Logger
}

// NewProvisioner creates a Provisioner that runs virtualenv through runner.
func NewProvisioner(cfg *Config, runner runtime.Runner, logger *log.Logger) *Provisioner {
	if logger == nil {
		logger = log.Default()
	}
	return &Provisioner{cfg: cfg, runner: runner, logger: logger}
}

// Config returns the provisioner's configuration.
func (p *Provisioner) Config() *Config {
	return p.cfg
}

// Path returns where the project's virtualenv lives. The project is expected
// to be expanded already.
func (p *Provisioner) Path(proj *project.Project) string {
	if proj.Virtualenv != nil && proj.Virtualenv.Path != "" {
		return proj.Virtualenv.Path
	}
	return filepath.Join(p.cfg.VirtualenvsDir, proj.SessionName)
}

// ActivateScript returns the path of the virtualenv's bash activate script.
func (p *Provisioner) ActivateScript(proj *project.Project) string {
	return filepath.Join(p.Path(proj), "bin", "activate")
}

// Command returns the virtualenv invocation that creates the project's environment.
func (p *Provisioner) Command(proj *project.Project) runtime.Command {
	python := p.cfg.DefaultPython
	sitePackages := false
	if proj.Virtualenv != nil {
		if proj.Virtualenv.PythonBinary != "" {
			python = proj.Virtualenv.PythonBinary
		}
		sitePackages = proj.Virtualenv.SitePackages
	}

	args := []string{"-p", python}
	if sitePackages {
		args = append(args, "--system-site-packages")
	}
	args = append(args, p.Path(proj))

	return runtime.NewCommand(p.cfg.Binary, args...)
}

// Exists reports whether the project's virtualenv directory is present.
func (p *Provisioner) Exists(proj *project.Project) bool {
	return dirExists(p.Path(proj))
}

// Ensure creates the project's virtualenv if it is missing. With rebuild set,
// an existing virtualenv is deleted and created again. Projects without a
// virtualenv are left alone.
func (p *Provisioner) Ensure(ctx context.Context, proj *project.Project, rebuild bool) error {
	if !proj.HasVirtualenv() {
		return nil
	}

	path := p.Path(proj)
	if dirExists(path) {
		if !rebuild {
			p.logger.Debug("virtualenv exists", "path", path)
			return nil
		}
		if err := p.Remove(path); err != nil {
			return err
		}
	}

	p.logger.Info("creating virtualenv", "path", path)
	cmd := p.Command(proj)
	if err := p.runner.RunInteractive(ctx, cmd).Err(); err != nil {
		return issue.NewErrorContext().
			WithOperation("create virtualenv").
			WithResource(path).
			WithSuggestion(fmt.Sprintf("Check that '%s' is installed and on your PATH", p.cfg.Binary)).
			WithSuggestion("Set 'python binary' in the project file if the default interpreter is missing").
			WithIssue(issue.VirtualenvFailedId).
			Wrap(err).
			BuildError()
	}

	return nil
}

// Remove deletes a virtualenv directory. A missing directory is not an error.
func (p *Provisioner) Remove(path string) error {
	if p.cfg.DryRun {
		p.logger.Info("would remove virtualenv", "path", path)
		return nil
	}

	p.logger.Info("removing virtualenv", "path", path)
	if err := os.RemoveAll(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove virtualenv %s: %w", path, err)
	}
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
