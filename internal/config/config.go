// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"tenper-cli/internal/cueutil"
	"tenper-cli/internal/issue"

	"github.com/spf13/viper"
	"mvdan.cc/sh/v3/shell"
)

const (
	// AppName is the application name.
	AppName = "tenper"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment variable overrides (TENPER_TMUX_BINARY).
	EnvPrefix = "TENPER"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the tenper configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the path of the global config file.
func ConfigFilePath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// DefaultConfig returns the configuration used when no config file exists.
// Project files live in ~/.tenper and virtualenvs follow virtualenvwrapper's
// $WORKON_HOME, falling back to ~/.virtualenvs.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}

	venvDir := os.Getenv("WORKON_HOME")
	if venvDir == "" {
		venvDir = filepath.Join(home, ".virtualenvs")
	}

	return &Config{
		ConfigsDir:     filepath.Join(home, "."+AppName),
		VirtualenvsDir: venvDir,
		Tmux: TmuxConfig{
			Binary:         "tmux",
			Force256Colors: true,
		},
		Virtualenv: VirtualenvConfig{
			Binary:        "virtualenv",
			DefaultPython: "/usr/bin/python",
		},
		UI: UIConfig{
			ColorScheme:   ColorSchemeAuto,
			PauseOnAttach: true,
		},
	}
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. It returns the config and the file it was read from
// ("" when only defaults and environment overrides apply).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("configs_dir", defaults.ConfigsDir)
	v.SetDefault("virtualenvs_dir", defaults.VirtualenvsDir)
	v.SetDefault("editor", defaults.Editor)
	v.SetDefault("tmux.binary", defaults.Tmux.Binary)
	v.SetDefault("tmux.force_256_colors", defaults.Tmux.Force256Colors)
	v.SetDefault("virtualenv.binary", defaults.Virtualenv.Binary)
	v.SetDefault("virtualenv.default_python", defaults.Virtualenv.DefaultPython)
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.pause_on_attach", defaults.UI.PauseOnAttach)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'tenper config path' to see where the default file lives").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}
		cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		if fileExists(cuePath) {
			resolvedPath = cuePath
		}
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Run 'tenper config dump' to compare against the defaults").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	for _, dir := range []*string{&cfg.ConfigsDir, &cfg.VirtualenvsDir} {
		expanded, err := ExpandPath(*dir)
		if err != nil {
			return nil, "", fmt.Errorf("failed to expand %q: %w", *dir, err)
		}
		*dir = expanded
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper validates a CUE file against #Config and merges it into Viper.
// Config fields are all optional, so the value is validated non-concretely and
// decoded to a map rather than a struct.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	unified, err := cueutil.Validate(configSchema, data, "#Config",
		cueutil.WithFilename(path), cueutil.WithConcrete(false))
	if err != nil {
		return err
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// ExpandPath expands a leading ~ and $VAR references in a directory setting.
// Variables are read from the process environment.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		rest, err := ExpandVars(path[1:], nil)
		return home + rest, err
	}
	return ExpandVars(path, nil)
}

// ExpandVars expands $NAME and ${...} references in s through lookup, or the
// process environment when lookup is nil. Backticks, $(...), $1 and the other
// special parameters are kept as written.
func ExpandVars(s string, lookup func(string) string) (string, error) {
	return shell.Expand(quoteNonParams(s), lookup)
}

// quoteNonParams escapes backslashes, backticks and every '$' that does not
// start a $NAME or ${...} reference.
func quoteNonParams(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '`':
			b.WriteByte('\\')
		case '$':
			if i+1 >= len(s) || !startsParam(s[i+1]) {
				b.WriteByte('\\')
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func startsParam(c byte) bool {
	return c == '{' || c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes a default config file if none exists and
// returns its path.
func CreateDefaultConfig() (string, bool, error) {
	cfgPath, err := ConfigFilePath()
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, true, nil
}

// GenerateCUE generates a CUE representation of the configuration.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// tenper configuration file\n")
	sb.WriteString("// Every field is optional; remove a line to fall back to the built-in default.\n\n")

	fmt.Fprintf(&sb, "configs_dir:     %q\n", cfg.ConfigsDir)
	fmt.Fprintf(&sb, "virtualenvs_dir: %q\n", cfg.VirtualenvsDir)
	if cfg.Editor != "" {
		fmt.Fprintf(&sb, "editor:          %q\n", cfg.Editor)
	}

	sb.WriteString("\ntmux: {\n")
	fmt.Fprintf(&sb, "\tbinary:           %q\n", cfg.Tmux.Binary)
	fmt.Fprintf(&sb, "\tforce_256_colors: %v\n", cfg.Tmux.Force256Colors)
	sb.WriteString("}\n")

	sb.WriteString("\nvirtualenv: {\n")
	fmt.Fprintf(&sb, "\tbinary:         %q\n", cfg.Virtualenv.Binary)
	fmt.Fprintf(&sb, "\tdefault_python: %q\n", cfg.Virtualenv.DefaultPython)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme:    %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose:         %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tpause_on_attach: %v\n", cfg.UI.PauseOnAttach)
	sb.WriteString("}\n")

	return sb.String()
}
