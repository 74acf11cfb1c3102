// SPDX-License-Identifier: MPL-2.0

package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"tenper-cli/internal/issue"
)

var (
	// ErrNoServer is returned when no tmux server is running.
	ErrNoServer = errors.New("no tmux server running")
	// ErrSessionExists is returned when creating a session whose name is taken.
	ErrSessionExists = errors.New("session already exists")
	// ErrSessionNotFound is returned when a target session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrUnexpectedOutput is returned when a tmux listing cannot be parsed.
	ErrUnexpectedOutput = errors.New("unexpected tmux output")
)

// wrapError maps a failed tmux invocation to a sentinel error while keeping the
// original error (and its exit status) in the chain.
func (c *Client) wrapError(err error, stderr string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return issue.NewErrorContext().
			WithOperation("run tmux").
			WithResource(c.binary).
			WithSuggestion("Install tmux with your package manager (apt install tmux, brew install tmux)").
			WithSuggestion("Set tmux.binary in 'tenper config' if tmux lives outside PATH").
			WithIssue(issue.TmuxNotFoundId).
			Wrap(err).
			BuildError()
	}

	stderr = strings.TrimSpace(stderr)
	switch {
	case strings.Contains(stderr, "no server running"),
		strings.Contains(stderr, "error connecting to"),
		strings.Contains(stderr, "server exited unexpectedly"):
		return fmt.Errorf("%w: %w", ErrNoServer, err)
	case strings.Contains(stderr, "duplicate session"):
		return fmt.Errorf("%w: %w", ErrSessionExists, err)
	case strings.Contains(stderr, "session not found"),
		strings.Contains(stderr, "can't find session"):
		return fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	return err
}
