// SPDX-License-Identifier: MPL-2.0

// Package config handles tenper's own settings using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/tenper/config.cue (XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support/tenper/config.cue on macOS, %APPDATA%\tenper\config.cue
// on Windows). It controls where project files and virtualenvs live, which tmux and
// virtualenv binaries run, and UI behavior. Every key can be overridden from the
// environment with the TENPER_ prefix (TENPER_CONFIGS_DIR, TENPER_UI_VERBOSE, ...).
//
// Files are validated against the embedded CUE schema (config_schema.cue) before they
// are merged into Viper.
package config
