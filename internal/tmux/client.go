// SPDX-License-Identifier: MPL-2.0

package tmux

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tenper-cli/internal/config"
	"tenper-cli/internal/runtime"
)

type (
	// Options configures a Client.
	Options struct {
		// Binary is the tmux executable.
		Binary string
		// Force256Colors passes -2 when attaching.
		Force256Colors bool
		// InsideTmux switches the current client instead of attaching a new one.
		InsideTmux bool
		// SocketName selects a separate server with -L when set.
		SocketName string
	}

	// Client issues tmux commands.
	Client struct {
		binary     string
		force256   bool
		insideTmux bool
		socketName string
		runner     runtime.Runner
	}
)

// OptionsFrom derives client options from the global configuration and the
// environment read through getenv ($TMUX is set inside a tmux client).
func OptionsFrom(cfg *config.Config, getenv func(string) string) Options {
	return Options{
		Binary:         cfg.Tmux.Binary,
		Force256Colors: cfg.Tmux.Force256Colors,
		InsideTmux:     getenv("TMUX") != "",
	}
}

// NewClient creates a Client that runs tmux through runner.
func NewClient(opts Options, runner runtime.Runner) *Client {
	binary := opts.Binary
	if binary == "" {
		binary = "tmux"
	}
	return &Client{
		binary:     binary,
		force256:   opts.Force256Colors,
		insideTmux: opts.InsideTmux,
		socketName: opts.SocketName,
		runner:     runner,
	}
}

// SanitizeSessionName replaces the characters tmux rewrites in session names
// ('.' and ':') so the name can be used in targets.
func SanitizeSessionName(name string) string {
	return strings.NewReplacer(".", "_", ":", "_").Replace(name)
}

// WindowTarget returns "<session>:<index>".
func WindowTarget(session string, index int) string {
	return session + ":" + strconv.Itoa(index)
}

// PaneTarget returns "<window>.<index>".
func PaneTarget(window string, index int) string {
	return window + "." + strconv.Itoa(index)
}

func (c *Client) command(args ...string) runtime.Command {
	if c.socketName != "" {
		args = append([]string{"-L", c.socketName}, args...)
	}
	return runtime.NewCommand(c.binary, args...)
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	res := c.runner.Run(ctx, c.command(args...))
	if err := res.Err(); err != nil {
		return "", c.wrapError(err, res.ErrOutput)
	}
	return res.Output, nil
}

// HasSession reports whether a session with exactly this name exists.
func (c *Client) HasSession(ctx context.Context, name string) (bool, error) {
	res := c.runner.Run(ctx, c.command("has-session", "-t", "="+name))
	if res.Error != nil {
		return false, c.wrapError(res.Error, res.ErrOutput)
	}
	return res.ExitCode.IsSuccess(), nil
}

// NewSession creates a detached session whose first window starts in dir.
func (c *Client) NewSession(ctx context.Context, name, dir string) error {
	_, err := c.run(ctx, "new-session", "-d", "-s", name, "-c", dir)
	return err
}

// SetOption sets a session option.
func (c *Client) SetOption(ctx context.Context, target, key, value string) error {
	_, err := c.run(ctx, "set-option", "-t", target, key, value)
	return err
}

// SetEnvironment sets a variable in the session environment. Only windows
// created afterwards see it.
func (c *Client) SetEnvironment(ctx context.Context, session, key, value string) error {
	_, err := c.run(ctx, "set-environment", "-t", session, key, escapeSemicolon(value))
	return err
}

// BaseWindowIndex returns the index of the session's first window. The
// base-index option is not reliably reported by show-options, so the first
// line of list-windows is used instead.
func (c *Client) BaseWindowIndex(ctx context.Context, session string) (int, error) {
	out, err := c.run(ctx, "list-windows", "-t", session)
	if err != nil {
		return 0, err
	}
	return parseFirstIndex(out)
}

// BasePaneIndex returns the index of the window's first pane.
func (c *Client) BasePaneIndex(ctx context.Context, window string) (int, error) {
	out, err := c.run(ctx, "list-panes", "-t", window)
	if err != nil {
		return 0, err
	}
	return parseFirstIndex(out)
}

// NewWindow creates a detached window named name at target.
func (c *Client) NewWindow(ctx context.Context, target, name, dir string) error {
	_, err := c.run(ctx, "new-window", "-d", "-t", target, "-n", name, "-c", dir)
	return err
}

// KillWindow destroys the target window.
func (c *Client) KillWindow(ctx context.Context, target string) error {
	_, err := c.run(ctx, "kill-window", "-t", target)
	return err
}

// MoveWindow moves the src window to dst.
func (c *Client) MoveWindow(ctx context.Context, src, dst string) error {
	_, err := c.run(ctx, "move-window", "-s", src, "-t", dst)
	return err
}

// SplitWindow splits the target pane, starting the new pane in dir.
func (c *Client) SplitWindow(ctx context.Context, target, dir string) error {
	_, err := c.run(ctx, "split-window", "-t", target, "-c", dir)
	return err
}

// SendKeys types keys into the target pane as literal text, then presses
// Enter. Key names such as "Escape" in keys are typed, not pressed.
func (c *Client) SendKeys(ctx context.Context, target, keys string) error {
	if _, err := c.run(ctx, "send-keys", "-l", "-t", target, "--", escapeSemicolon(keys)); err != nil {
		return err
	}
	_, err := c.run(ctx, "send-keys", "-t", target, "Enter")
	return err
}

// SelectLayout applies a preset or raw layout to the window.
func (c *Client) SelectLayout(ctx context.Context, window, layout string) error {
	_, err := c.run(ctx, "select-layout", "-t", window, layout)
	return err
}

// SelectPane makes the target pane active.
func (c *Client) SelectPane(ctx context.Context, target string) error {
	_, err := c.run(ctx, "select-pane", "-t", target)
	return err
}

// AttachCommand returns the command Attach runs for session.
func (c *Client) AttachCommand(session string) runtime.Command {
	if c.insideTmux {
		return c.command("switch-client", "-t", session)
	}
	var args []string
	if c.force256 {
		args = append(args, "-2")
	}
	args = append(args, "attach-session", "-t", session)
	return c.command(args...)
}

// Attach connects the user's terminal to session, or switches the current
// client when already inside tmux. It blocks until the client detaches.
func (c *Client) Attach(ctx context.Context, session string) error {
	cmd := c.AttachCommand(session)
	res := c.runner.RunInteractive(ctx, cmd)
	if err := res.Err(); err != nil {
		return c.wrapError(err, res.ErrOutput)
	}
	return nil
}

// escapeSemicolon protects a trailing ';', which tmux otherwise reads as the
// end of the command and drops. tmux turns the escaped `\;` back into ";".
func escapeSemicolon(arg string) string {
	if strings.HasSuffix(arg, ";") {
		return arg[:len(arg)-1] + `\;`
	}
	return arg
}

// parseFirstIndex extracts N from a first line shaped like "N: ...".
func parseFirstIndex(out string) (int, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	head, _, found := strings.Cut(line, ":")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrUnexpectedOutput, line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnexpectedOutput, line)
	}
	return n, nil
}
