// SPDX-License-Identifier: MPL-2.0

// Package tmux wraps the tmux command-line interface.
//
// Every method issues exactly one tmux command through a runtime.Runner, so the
// same Client drives a real server, a dry run that prints the commands, or a
// recorder in tests. tmux error output is mapped to sentinel errors where it is
// recognizable; the underlying *runtime.ExitStatusError stays in the chain so
// callers can propagate tmux's exit status.
package tmux
