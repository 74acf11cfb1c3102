// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// ConfigsDir is where project files (<name>.yml) are stored.
		ConfigsDir string `json:"configs_dir" mapstructure:"configs_dir"`
		// VirtualenvsDir is where project virtualenvs are created by default.
		VirtualenvsDir string `json:"virtualenvs_dir" mapstructure:"virtualenvs_dir"`
		// Editor is the fallback editor command when $EDITOR is unset.
		Editor string `json:"editor" mapstructure:"editor"`
		// Tmux configures the multiplexer invocation.
		Tmux TmuxConfig `json:"tmux" mapstructure:"tmux"`
		// Virtualenv configures virtualenv creation.
		Virtualenv VirtualenvConfig `json:"virtualenv" mapstructure:"virtualenv"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// TmuxConfig configures how tmux is invoked.
	TmuxConfig struct {
		Binary         string `json:"binary" mapstructure:"binary"`
		Force256Colors bool   `json:"force_256_colors" mapstructure:"force_256_colors"`
	}

	// VirtualenvConfig configures how virtualenvs are created.
	VirtualenvConfig struct {
		Binary string `json:"binary" mapstructure:"binary"`
		// DefaultPython is used when a project omits "python binary".
		DefaultPython string `json:"default_python" mapstructure:"default_python"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		ColorScheme   ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose       bool        `json:"verbose" mapstructure:"verbose"`
		PauseOnAttach bool        `json:"pause_on_attach" mapstructure:"pause_on_attach"`
	}
)

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// GlamourStyle maps the color scheme to a glamour style name.
func (c ColorScheme) GlamourStyle() string {
	switch c {
	case ColorSchemeDark, ColorSchemeLight:
		return string(c)
	default:
		return "auto"
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the Config has valid fields.
// Directory and binary fields must be non-empty after defaults are applied.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if c.ConfigsDir == "" {
		errs = append(errs, errors.New("configs_dir must not be empty"))
	}
	if c.VirtualenvsDir == "" {
		errs = append(errs, errors.New("virtualenvs_dir must not be empty"))
	}
	if c.Tmux.Binary == "" {
		errs = append(errs, errors.New("tmux.binary must not be empty"))
	}
	if c.Virtualenv.Binary == "" {
		errs = append(errs, errors.New("virtualenv.binary must not be empty"))
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
