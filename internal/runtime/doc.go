// SPDX-License-Identifier: MPL-2.0

// Package runtime executes the external tools tenper drives (tmux, virtualenv,
// the user's editor).
//
// Every invocation goes through a Runner. NativeRunner starts real processes,
// either capturing their output (Run) or handing them the terminal (RunInteractive).
// DryRunner prints the command lines instead of running them. Each command is logged
// at debug level before it starts, so --verbose shows the exact sequence issued.
//
// Non-zero exits are reported through Result.ExitCode and surfaced by Result.Err as
// an *ExitStatusError, which the CLI layer turns into the process exit status.
package runtime
