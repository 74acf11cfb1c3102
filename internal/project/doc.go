// SPDX-License-Identifier: MPL-2.0

// Package project loads, validates and stores per-project session files.
//
// A project file (~/.tenper/<name>.yml) describes one tmux session: its name, an
// optional virtualenv, the working directory, session environment variables and
// an ordered list of windows with their panes. YAML (.yml, .yaml) and TOML (.toml)
// are accepted; both are normalized to the same shape and validated against the
// embedded CUE schema (project_schema.cue) before being decoded into a Project.
package project
