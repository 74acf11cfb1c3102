// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load project"},
			expected: "failed to load project",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load project",
				Resource:  "/home/me/.tenper/web.yml",
			},
			expected: "failed to load project: /home/me/.tenper/web.yml",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load project",
				Resource:  "web.yml",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load project: web.yml: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := &ActionableError{Operation: "test", Cause: cause}

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if (&ActionableError{Operation: "test"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "suggestions",
			err: &ActionableError{
				Operation:   "load project",
				Resource:    "web.yml",
				Suggestions: []string{"Run 'tenper edit web'", "Run 'tenper list'"},
			},
			contains: []string{"failed to load project", "• Run 'tenper edit web'", "• Run 'tenper list'"},
		},
		{
			name: "no chain when not verbose",
			err: &ActionableError{
				Operation: "start session",
				Cause:     errors.New("exit status 1"),
			},
			contains: []string{"failed to start session: exit status 1"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested chain when verbose",
			err: &ActionableError{
				Operation: "start session",
				Cause: &ActionableError{
					Operation: "run tmux new-session",
					Cause:     errors.New("exit status 1"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to run tmux new-session: exit status 1",
				"2. exit status 1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(tt.verbose)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	if NewErrorContext().WithResource("web.yml").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}

	err := NewErrorContext().
		WithOperation("load project").
		WithResource("web.yml").
		WithSuggestion("Check syntax").
		WithSuggestion("Run 'tenper edit web'").
		WithIssue(ProjectParseErrorId).
		Wrap(errors.New("parse error")).
		Build()

	if err.Operation != "load project" || err.Resource != "web.yml" {
		t.Errorf("unexpected operation/resource: %q %q", err.Operation, err.Resource)
	}
	if len(err.Suggestions) != 2 {
		t.Errorf("Suggestions = %v, want 2", err.Suggestions)
	}
	if err.Issue != ProjectParseErrorId {
		t.Errorf("Issue = %d, want %d", err.Issue, ProjectParseErrorId)
	}
	if err.Cause == nil || err.Cause.Error() != "parse error" {
		t.Errorf("Cause = %v", err.Cause)
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("original error")

	if WrapWithContext(nil, "x", "y") != nil {
		t.Error("wrapping nil should return nil")
	}

	ctx := WrapWithContext(cause, "remove virtualenv", "/venvs/web")
	if ctx.Resource != "/venvs/web" || !errors.Is(ctx, cause) {
		t.Errorf("WrapWithContext() = %#v", ctx)
	}
}
