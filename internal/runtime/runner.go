// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

type (
	// Runner executes external commands.
	Runner interface {
		// Run executes cmd with captured stdout and stderr.
		Run(ctx context.Context, cmd Command) *Result
		// RunInteractive executes cmd attached to the runner's terminal streams.
		RunInteractive(ctx context.Context, cmd Command) *Result
	}

	// NativeRunner runs commands as host processes.
	NativeRunner struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		Logger *log.Logger
	}

	// DryRunner prints commands instead of executing them. Run returns the
	// canned output and exit code registered for the command's first argument,
	// so callers that parse tmux listings or check for sessions keep working.
	DryRunner struct {
		Out       io.Writer
		Outputs   map[string]string
		ExitCodes map[string]ExitCode
	}
)

// NewNativeRunner creates a NativeRunner bound to the process's standard streams.
func NewNativeRunner(logger *log.Logger) *NativeRunner {
	if logger == nil {
		logger = log.Default()
	}
	return &NativeRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run implements Runner.
func (r *NativeRunner) Run(ctx context.Context, cmd Command) *Result {
	var stdout, stderr bytes.Buffer
	c := r.prepare(ctx, cmd)
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := extractExitCode(cmd, err)
	result.Output = stdout.String()
	result.ErrOutput = stderr.String()
	if !result.Success() {
		r.Logger.Debug("command failed", "cmd", cmd.Name, "exit", result.ExitCode, "stderr", result.ErrOutput)
	}
	return result
}

// RunInteractive implements Runner.
func (r *NativeRunner) RunInteractive(ctx context.Context, cmd Command) *Result {
	c := r.prepare(ctx, cmd)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	return extractExitCode(cmd, c.Run())
}

func (r *NativeRunner) prepare(ctx context.Context, cmd Command) *exec.Cmd {
	r.Logger.Debug("+ " + cmd.String())

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	return c
}

// Run implements Runner.
func (r *DryRunner) Run(_ context.Context, cmd Command) *Result {
	fmt.Fprintln(r.Out, "+ "+cmd.String())

	result := &Result{Command: cmd}
	if len(cmd.Args) > 0 {
		result.Output = r.Outputs[cmd.Args[0]]
		result.ExitCode = r.ExitCodes[cmd.Args[0]]
	}
	return result
}

// RunInteractive implements Runner.
func (r *DryRunner) RunInteractive(ctx context.Context, cmd Command) *Result {
	return r.Run(ctx, cmd)
}

// extractExitCode determines the exit code from a command execution error.
func extractExitCode(cmd Command, err error) *Result {
	result := &Result{Command: cmd}
	if err == nil {
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode := ExitCode(exitErr.ExitCode())
		if validateErr := exitCode.Validate(); validateErr != nil {
			// Killed by a signal reports -1.
			result.ExitCode = 1
			result.Error = fmt.Errorf("%s: %w", cmd.Name, err)
			return result
		}
		result.ExitCode = exitCode
		return result
	}

	// Some other error (command not found, permission denied)
	result.ExitCode = 1
	result.Error = fmt.Errorf("failed to execute %s: %w", cmd.Name, err)
	return result
}
