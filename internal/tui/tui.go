// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user aborts a prompt with Esc or Ctrl+C.
var ErrCancelled = errors.New("user aborted")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7C3AED")).Bold(true).Padding(0, 1)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Padding(0, 1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Config holds common configuration for prompts.
type Config struct {
	// Accessible selects the line-based prompts instead of bubbletea.
	Accessible bool
	// Input is where answers are read from.
	Input io.Reader
	// Output is where prompts are written.
	Output io.Writer
}

// DefaultConfig returns the configuration for the current process. Accessible
// mode is enabled when stdin is not a terminal or ACCESSIBLE is set, and then
// prompts go to stderr so they are not captured by $() substitution.
func DefaultConfig() Config {
	accessible := !isInputTerminal() || os.Getenv("ACCESSIBLE") != ""

	var output io.Writer = os.Stdout
	if accessible {
		output = os.Stderr
	}

	return Config{
		Accessible: accessible,
		Input:      os.Stdin,
		Output:     output,
	}
}

// isInputTerminal returns true if stdin is connected to a terminal.
func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (c Config) input() io.Reader {
	if c.Input == nil {
		return os.Stdin
	}
	return c.Input
}

func (c Config) output() io.Writer {
	if c.Output == nil {
		return os.Stderr
	}
	return c.Output
}
