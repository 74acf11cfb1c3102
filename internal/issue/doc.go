// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Errors carry the failed operation, the resource involved and remediation hints.
// A small catalog of Markdown issues, rendered with glamour, explains the common
// failure modes of starting a session (missing project files, missing tmux, broken
// virtualenvs, editors that cannot be launched).
package issue
