// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"
	"strconv"

	"tenper-cli/internal/project"
	"tenper-cli/internal/provision"
	"tenper-cli/internal/runtime"
	"tenper-cli/internal/tmux"

	"github.com/charmbracelet/log"
)

// ExistingSessionMessage is shown before re-attaching to a running session.
const ExistingSessionMessage = "Session already exists: attaching."

type (
	// PauseFunc is called before attaching to an existing session.
	PauseFunc func(message string) error

	// Launcher starts project sessions.
	Launcher struct {
		tmux        *tmux.Client
		provisioner *provision.Provisioner
		pause       PauseFunc
		logger      *log.Logger
	}

	// Option configures a Launcher.
	Option func(*Launcher)
)

// WithPause sets the prompt shown before re-attaching. Without it the
// launcher attaches immediately.
func WithPause(pause PauseFunc) Option {
	return func(l *Launcher) {
		l.pause = pause
	}
}

// WithLogger sets the launcher's logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// NewLauncher creates a Launcher.
func NewLauncher(client *tmux.Client, provisioner *provision.Provisioner, opts ...Option) *Launcher {
	l := &Launcher{
		tmux:        client,
		provisioner: provisioner,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start ensures the project's virtualenv, builds the session unless it
// already exists and attaches to it. The project must already be expanded.
// The first failing command aborts the sequence and its error is returned.
func (l *Launcher) Start(ctx context.Context, proj *project.Project) error {
	if err := l.provisioner.Ensure(ctx, proj, false); err != nil {
		return err
	}

	name := tmux.SanitizeSessionName(proj.SessionName)

	exists, err := l.tmux.HasSession(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		l.logger.Debug("session exists", "session", name)
		if l.pause != nil {
			if err := l.pause(ExistingSessionMessage); err != nil {
				return err
			}
		}
		return l.tmux.Attach(ctx, name)
	}

	if err := l.Build(ctx, proj); err != nil {
		return err
	}

	return l.tmux.Attach(ctx, name)
}

// Build creates the session's windows and panes without attaching.
func (l *Launcher) Build(ctx context.Context, proj *project.Project) error {
	name := tmux.SanitizeSessionName(proj.SessionName)
	root := proj.ProjectRoot

	if err := l.tmux.NewSession(ctx, name, root); err != nil {
		return err
	}

	// Leave room for the brackets tmux draws around the name.
	if err := l.tmux.SetOption(ctx, name, "status-left-length", strconv.Itoa(len(name)+2)); err != nil {
		return err
	}

	for _, env := range proj.SortedEnvironment() {
		if err := l.tmux.SetEnvironment(ctx, name, env.Key, env.Value); err != nil {
			return err
		}
	}

	base, err := l.tmux.BaseWindowIndex(ctx, name)
	if err != nil {
		return err
	}

	var activate string
	if proj.HasVirtualenv() {
		activate = "source " + runtime.QuoteArg(l.provisioner.ActivateScript(proj))
	}

	for i, win := range proj.Windows {
		target := tmux.WindowTarget(name, base+i)
		if err := l.createWindow(ctx, name, base, i, win.Name, root); err != nil {
			return err
		}
		if err := l.buildPanes(ctx, target, win, root, activate); err != nil {
			return err
		}
	}

	return nil
}

// createWindow creates window i. The first window replaces the session's
// initial window: it is created after it, the initial one is killed and the
// new one takes its index.
func (l *Launcher) createWindow(ctx context.Context, session string, base, i int, name, root string) error {
	if i > 0 {
		return l.tmux.NewWindow(ctx, tmux.WindowTarget(session, base+i), name, root)
	}

	initial := tmux.WindowTarget(session, base)
	next := tmux.WindowTarget(session, base+1)
	if err := l.tmux.NewWindow(ctx, next, name, root); err != nil {
		return err
	}
	if err := l.tmux.KillWindow(ctx, initial); err != nil {
		return err
	}
	return l.tmux.MoveWindow(ctx, next, initial)
}

func (l *Launcher) buildPanes(ctx context.Context, target string, win project.Window, root, activate string) error {
	paneBase, err := l.tmux.BasePaneIndex(ctx, target)
	if err != nil {
		return err
	}
	first := tmux.PaneTarget(target, paneBase)

	for j, command := range win.Panes {
		// A split targets the window's active pane, which is always the newest
		// one, so the new pane lands at the end of the index range.
		if j > 0 {
			if err := l.tmux.SplitWindow(ctx, target, root); err != nil {
				return err
			}
		}
		pane := tmux.PaneTarget(target, paneBase+j)
		if activate != "" {
			if err := l.tmux.SendKeys(ctx, pane, activate); err != nil {
				return err
			}
		}
		if command != "" {
			if err := l.tmux.SendKeys(ctx, pane, command); err != nil {
				return err
			}
		}
	}

	if win.Layout != "" {
		if err := l.tmux.SelectLayout(ctx, target, win.Layout); err != nil {
			return err
		}
	}

	return l.tmux.SelectPane(ctx, first)
}
