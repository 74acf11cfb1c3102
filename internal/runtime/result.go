// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"fmt"
	"strings"
)

type (
	// Result contains the outcome of running a Command.
	Result struct {
		// Command is the invocation that produced this result.
		Command Command
		// ExitCode is the process exit status (0 on success).
		ExitCode ExitCode
		// Output is the captured stdout (empty for interactive runs).
		Output string
		// ErrOutput is the captured stderr (empty for interactive runs).
		ErrOutput string
		// Error is set when the process could not be started or waited on.
		Error error
	}

	// ExitStatusError reports a command that ran and exited non-zero.
	ExitStatusError struct {
		Command string
		Code    ExitCode
		Stderr  string
	}
)

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Success reports whether the command started and exited 0.
func (r *Result) Success() bool {
	return r.Error == nil && r.ExitCode.IsSuccess()
}

// Err converts the result into an error: the start error if any, an
// *ExitStatusError for a non-zero exit, or nil.
func (r *Result) Err() error {
	if r.Error != nil {
		return r.Error
	}
	if r.ExitCode.IsSuccess() {
		return nil
	}
	return &ExitStatusError{
		Command: r.Command.String(),
		Code:    r.ExitCode,
		Stderr:  strings.TrimSpace(r.ErrOutput),
	}
}
