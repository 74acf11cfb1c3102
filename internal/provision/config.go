// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"tenper-cli/internal/config"
)

type (
	// Config holds the settings the provisioner needs from the global config.
	Config struct {
		// VirtualenvsDir is the parent directory of default virtualenv locations.
		VirtualenvsDir string

		// Binary is the virtualenv executable.
		Binary string

		// DefaultPython is passed to -p when a project omits "python binary".
		DefaultPython string

		// DryRun reports directory removals instead of performing them.
		DryRun bool
	}

	// Option is a functional option for configuring a Config.
	Option func(*Config)
)

// ConfigFrom derives provisioner settings from the global configuration.
func ConfigFrom(cfg *config.Config, opts ...Option) *Config {
	c := &Config{
		VirtualenvsDir: cfg.VirtualenvsDir,
		Binary:         cfg.Virtualenv.Binary,
		DefaultPython:  cfg.Virtualenv.DefaultPython,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithDryRun toggles dry-run mode.
func WithDryRun(dryRun bool) Option {
	return func(c *Config) {
		c.DryRun = dryRun
	}
}
