// SPDX-License-Identifier: MPL-2.0

// Package session builds a project's tmux session and attaches to it.
//
// Starting is idempotent: when the session already exists the user is attached
// to it and nothing else runs. Otherwise the session is scripted window by
// window. The initial window tmux creates with a session is replaced, since it
// was spawned before set-environment ran and would not see the project's
// variables.
package session
