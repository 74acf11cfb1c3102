// SPDX-License-Identifier: MPL-2.0

package tmux

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"testing"

	"tenper-cli/internal/config"
	"tenper-cli/internal/issue"
	"tenper-cli/internal/runtime"
	"tenper-cli/internal/testutil/runnertest"
)

func TestClientCommands(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := runnertest.New()
	c := NewClient(Options{Binary: "tmux"}, rec)

	steps := []struct {
		call func() error
		want string
	}{
		{func() error { return c.NewSession(ctx, "web", "/src") }, "new-session -d -s web -c /src"},
		{func() error { return c.SetOption(ctx, "web", "status-left-length", "5") }, "set-option -t web status-left-length 5"},
		{func() error { return c.SetEnvironment(ctx, "web", "A", "1") }, "set-environment -t web A 1"},
		{func() error { return c.NewWindow(ctx, "web:1", "editor", "/src") }, "new-window -d -t web:1 -n editor -c /src"},
		{func() error { return c.KillWindow(ctx, "web:0") }, "kill-window -t web:0"},
		{func() error { return c.MoveWindow(ctx, "web:1", "web:0") }, "move-window -s web:1 -t web:0"},
		{func() error { return c.SplitWindow(ctx, "web:0.0", "/src") }, "split-window -t web:0.0 -c /src"},
		{func() error { return c.SendKeys(ctx, "web:0.1", "ls -l") }, "send-keys -l -t web:0.1 -- ls -l\nsend-keys -t web:0.1 Enter"},
		{func() error { return c.SelectLayout(ctx, "web:0", "tiled") }, "select-layout -t web:0 tiled"},
		{func() error { return c.SelectPane(ctx, "web:0.0") }, "select-pane -t web:0.0"},
	}

	want := make([]string, 0, len(steps))
	for _, s := range steps {
		if err := s.call(); err != nil {
			t.Fatalf("%s: %v", s.want, err)
		}
		want = append(want, strings.Split(s.want, "\n")...)
	}

	if got := rec.Lines(); !slices.Equal(got, want) {
		t.Errorf("commands:\n got %q\nwant %q", got, want)
	}

	calls := rec.Calls()
	if calls[7].Command.Args[5] != "ls -l" {
		t.Errorf("send-keys must pass the command as one argument, got %q", calls[7].Command.Args)
	}
	for _, call := range calls {
		if call.Command.Name != "tmux" || call.Interactive {
			t.Errorf("unexpected call %+v", call)
		}
	}
}

func TestClientEscapesTrailingSemicolon(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name string
		call func(c *Client) error
		want []string
	}{
		{
			name: "pane command",
			call: func(c *Client) error { return c.SendKeys(ctx, "p:0.0", "make build;") },
			want: []string{"send-keys", "-l", "-t", "p:0.0", "--", `make build\;`},
		},
		{
			name: "shell loop",
			call: func(c *Client) error { return c.SendKeys(ctx, "p:0.0", "for f in *; do echo $f; done;") },
			want: []string{"send-keys", "-l", "-t", "p:0.0", "--", `for f in *; do echo $f; done\;`},
		},
		{
			name: "already escaped",
			call: func(c *Client) error { return c.SendKeys(ctx, "p:0.0", `find . -exec ls {} \;`) },
			want: []string{"send-keys", "-l", "-t", "p:0.0", "--", `find . -exec ls {} \\;`},
		},
		{
			name: "key name typed as text",
			call: func(c *Client) error { return c.SendKeys(ctx, "p:0.0", "Escape") },
			want: []string{"send-keys", "-l", "-t", "p:0.0", "--", "Escape"},
		},
		{
			name: "environment value",
			call: func(c *Client) error { return c.SetEnvironment(ctx, "p", "PROMPT_COMMAND", "history -a;") },
			want: []string{"set-environment", "-t", "p", "PROMPT_COMMAND", `history -a\;`},
		},
		{
			name: "inner semicolons untouched",
			call: func(c *Client) error { return c.SetEnvironment(ctx, "p", "X", "a;b") },
			want: []string{"set-environment", "-t", "p", "X", "a;b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := runnertest.New()
			if err := tt.call(NewClient(Options{}, rec)); err != nil {
				t.Fatal(err)
			}
			if got := rec.Calls()[0].Command.Args; !slices.Equal(got, tt.want) {
				t.Errorf("args = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientSocketName(t *testing.T) {
	t.Parallel()

	rec := runnertest.New()
	c := NewClient(Options{Binary: "/opt/bin/tmux", SocketName: "test", Force256Colors: true}, rec)

	if err := c.SelectPane(context.Background(), "web:0.0"); err != nil {
		t.Fatal(err)
	}
	want := []string{"/opt/bin/tmux", "-L", "test", "select-pane", "-t", "web:0.0"}
	if got := rec.Calls()[0].Command.Argv(); !slices.Equal(got, want) {
		t.Errorf("argv = %q, want %q", got, want)
	}

	want = []string{"/opt/bin/tmux", "-L", "test", "-2", "attach-session", "-t", "web"}
	if got := c.AttachCommand("web").Argv(); !slices.Equal(got, want) {
		t.Errorf("attach argv = %q, want %q", got, want)
	}
}

func TestHasSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	rec := runnertest.New()
	c := NewClient(Options{}, rec)
	exists, err := c.HasSession(ctx, "web")
	if err != nil || !exists {
		t.Errorf("HasSession() = %v, %v; want true", exists, err)
	}
	if got := rec.Lines(); !slices.Equal(got, []string{"has-session -t =web"}) {
		t.Errorf("commands = %q", got)
	}

	rec = runnertest.New().Fail(1, "can't find session: web", "has-session")
	exists, err = NewClient(Options{}, rec).HasSession(ctx, "web")
	if err != nil || exists {
		t.Errorf("HasSession() = %v, %v; want false", exists, err)
	}

	rec = runnertest.New().Fail(1, "no server running on /tmp/tmux-1000/default", "has-session")
	exists, err = NewClient(Options{}, rec).HasSession(ctx, "web")
	if err != nil || exists {
		t.Errorf("HasSession() without server = %v, %v; want false", exists, err)
	}
}

func TestTmuxNotInstalled(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("failed to execute tmux: %w", &exec.Error{Name: "tmux", Err: exec.ErrNotFound})
	rec := runnertest.New().FailStart(notFound, "has-session")

	_, err := NewClient(Options{}, rec).HasSession(context.Background(), "web")
	if err == nil {
		t.Fatal("expected error")
	}
	if i := issue.IssueOf(err); i == nil || i.Id() != issue.TmuxNotFoundId {
		t.Errorf("expected the tmux-not-found issue, got %v", err)
	}
}

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stderr string
		want   error
	}{
		{"no server running on /tmp/tmux-0/default", ErrNoServer},
		{"error connecting to /tmp/tmux-0/default (No such file or directory)", ErrNoServer},
		{"duplicate session: web", ErrSessionExists},
		{"can't find session: web", ErrSessionNotFound},
		{"session not found: web", ErrSessionNotFound},
	}

	for _, tt := range tests {
		rec := runnertest.New().Fail(1, tt.stderr, "new-session")
		err := NewClient(Options{}, rec).NewSession(context.Background(), "web", "/")
		if !errors.Is(err, tt.want) {
			t.Errorf("stderr %q: got %v, want %v", tt.stderr, err, tt.want)
		}
		var exitErr *runtime.ExitStatusError
		if !errors.As(err, &exitErr) || exitErr.Code != 1 {
			t.Errorf("stderr %q: exit status lost in %v", tt.stderr, err)
		}
	}

	rec := runnertest.New().Fail(2, "unknown layout: sideways", "select-layout")
	err := NewClient(Options{}, rec).SelectLayout(context.Background(), "web:0", "sideways")
	var exitErr *runtime.ExitStatusError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Errorf("unrecognized error should keep its exit status, got %v", err)
	}
}

func TestBaseIndexes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := runnertest.New().
		Stub("1: zsh* (1 panes) [80x24] [layout b25d,80x24,0,0,1] @1 (active)\n2: vim- (1 panes)\n", "list-windows").
		Stub("0: [80x24] [history 0/2000, 0 bytes] %0 (active)\n", "list-panes")
	c := NewClient(Options{}, rec)

	w, err := c.BaseWindowIndex(ctx, "web")
	if err != nil || w != 1 {
		t.Errorf("BaseWindowIndex() = %d, %v; want 1", w, err)
	}
	p, err := c.BasePaneIndex(ctx, "web:1")
	if err != nil || p != 0 {
		t.Errorf("BasePaneIndex() = %d, %v; want 0", p, err)
	}
	if got := rec.Lines(); !slices.Equal(got, []string{"list-windows -t web", "list-panes -t web:1"}) {
		t.Errorf("commands = %q", got)
	}
}

func TestParseFirstIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		out     string
		want    int
		wantErr bool
	}{
		{"0: bash* (1 panes)", 0, false},
		{"\n  3: x\n4: y", 3, false},
		{"12:", 12, false},
		{"", 0, true},
		{"bash", 0, true},
		{"x: bash", 0, true},
	}

	for _, tt := range tests {
		got, err := parseFirstIndex(tt.out)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseFirstIndex(%q) = %d, %v", tt.out, got, err)
		}
		if err != nil && !errors.Is(err, ErrUnexpectedOutput) {
			t.Errorf("error should wrap ErrUnexpectedOutput: %v", err)
		}
	}
}

func TestAttach(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"plain", Options{}, "attach-session -t web"},
		{"256 colors", Options{Force256Colors: true}, "-2 attach-session -t web"},
		{"inside tmux", Options{InsideTmux: true, Force256Colors: true}, "switch-client -t web"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := runnertest.New()
			if err := NewClient(tt.opts, rec).Attach(context.Background(), "web"); err != nil {
				t.Fatalf("Attach() error = %v", err)
			}
			calls := rec.Calls()
			if len(calls) != 1 || !calls[0].Interactive {
				t.Fatalf("calls = %+v", calls)
			}
			if got := rec.Lines()[0]; got != tt.want {
				t.Errorf("command = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionsFrom(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Tmux: config.TmuxConfig{Binary: "/opt/tmux", Force256Colors: true}}

	tests := []struct {
		name string
		env  map[string]string
		want Options
	}{
		{"outside tmux", nil, Options{Binary: "/opt/tmux", Force256Colors: true}},
		{"inside tmux", map[string]string{"TMUX": "/tmp/tmux-1000/default,42,0"}, Options{Binary: "/opt/tmux", Force256Colors: true, InsideTmux: true}},
		{"empty TMUX", map[string]string{"TMUX": ""}, Options{Binary: "/opt/tmux", Force256Colors: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := OptionsFrom(cfg, func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("OptionsFrom() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTargetsAndNames(t *testing.T) {
	t.Parallel()

	if got := PaneTarget(WindowTarget("web", 2), 1); got != "web:2.1" {
		t.Errorf("PaneTarget = %q", got)
	}
	if got := SanitizeSessionName("my.app:dev"); got != "my_app_dev" {
		t.Errorf("SanitizeSessionName = %q", got)
	}
}
