// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		ProjectNotFoundId,
		ProjectParseErrorId,
		TmuxNotFoundId,
		SessionFailedId,
		VirtualenvFailedId,
		EditorFailedId,
		ConfigLoadFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true

		if i := Get(id); i == nil || i.Id() != id {
			t.Errorf("Get(%d) = %v, every ID needs its own catalog entry", id, i)
		}
	}
	if len(issues) != len(ids) {
		t.Errorf("catalog has %d issues, want %d", len(issues), len(ids))
	}

	if ProjectNotFoundId != 1 {
		t.Errorf("ProjectNotFoundId = %d, want 1", ProjectNotFoundId)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	tests := []struct {
		id   Id
		want string
	}{
		{ProjectNotFoundId, "No project configuration found"},
		{TmuxNotFoundId, "tmux not found"},
		{VirtualenvFailedId, "virtualenv"},
		{EditorFailedId, "$EDITOR"},
	}

	for _, tt := range tests {
		msg := Get(tt.id).mdMsg
		if !strings.Contains(string(msg), tt.want) {
			t.Errorf("issue %d message should contain %q", tt.id, tt.want)
		}
	}
}

func TestIssue_Render(t *testing.T) {
	orig := render
	t.Cleanup(func() { render = orig })

	var gotMd, gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotMd, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Get(TmuxNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "rendered" {
		t.Errorf("Render() = %q", out)
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want dark", gotStyle)
	}
	if !strings.Contains(gotMd, "## See also:") || !strings.Contains(gotMd, "tmux/wiki/Installing") {
		t.Errorf("rendered markdown should list links, got:\n%s", gotMd)
	}
}

func TestIssue_RenderWithGlamour(t *testing.T) {
	out, err := Get(ProjectNotFoundId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "tenper edit web") {
		t.Errorf("rendered output missing example command:\n%s", out)
	}
}

func TestIssueOf(t *testing.T) {
	base := errors.New("exit status 1")

	linked := NewErrorContext().
		WithOperation("create virtualenv").
		WithIssue(VirtualenvFailedId).
		Wrap(base).
		BuildError()

	outer := WrapWithContext(linked, "start session", "web")

	if got := IssueOf(outer); got == nil || got.Id() != VirtualenvFailedId {
		t.Errorf("IssueOf(outer) = %v, want VirtualenvFailedId", got)
	}
	if got := IssueOf(base); got != nil {
		t.Errorf("IssueOf(plain error) = %v, want nil", got)
	}
	if got := IssueOf(nil); got != nil {
		t.Errorf("IssueOf(nil) = %v, want nil", got)
	}
}
