// SPDX-License-Identifier: MPL-2.0

package project

import (
	"strings"
	"testing"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
session name: web
virtualenv:
    python binary: /usr/bin/python3
    site packages?: true
    path: $HOME/.venvs/web
project root: $HOME/src/web
environment:
    DEBUG: 1
    VERBOSE: true
    EMPTY:
    PATH: $PATH:/opt/bin
windows:
  - name: editor
    panes:
      - vim
  - name: shells
    layout: tiled
    panes:
      - make watch
      -
      - top
  - name: bare
`)

	p, err := Parse(data, FormatYAML, "web.yml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if p.SessionName != "web" {
		t.Errorf("SessionName = %q", p.SessionName)
	}
	if p.ProjectRoot != "$HOME/src/web" {
		t.Errorf("ProjectRoot = %q, expansion happens later", p.ProjectRoot)
	}
	if !p.HasVirtualenv() {
		t.Fatal("expected a virtualenv")
	}
	want := Virtualenv{PythonBinary: "/usr/bin/python3", SitePackages: true, Path: "$HOME/.venvs/web"}
	if *p.Virtualenv != want {
		t.Errorf("Virtualenv = %+v, want %+v", *p.Virtualenv, want)
	}

	wantEnv := map[string]string{"DEBUG": "1", "VERBOSE": "true", "EMPTY": "", "PATH": "$PATH:/opt/bin"}
	for k, v := range wantEnv {
		if got := p.Environment[k]; got != v {
			t.Errorf("Environment[%s] = %q, want %q", k, got, v)
		}
	}

	if len(p.Windows) != 3 {
		t.Fatalf("len(Windows) = %d, want 3", len(p.Windows))
	}
	shells := p.Windows[1]
	if shells.Layout != "tiled" {
		t.Errorf("Layout = %q", shells.Layout)
	}
	if got := strings.Join(shells.Panes, "|"); got != "make watch||top" {
		t.Errorf("Panes = %q", shells.Panes)
	}
	if len(p.Windows[2].Panes) != 0 {
		t.Errorf("bare window panes = %q", p.Windows[2].Panes)
	}
}

func TestParseTOML(t *testing.T) {
	t.Parallel()

	data := []byte(`
"session name" = "api"
"project root" = "/srv/api"

[virtualenv]
"python binary" = "python3.12"

[environment]
PORT = 8080

[[windows]]
name = "server"
panes = ["go run ./cmd/api", ""]

[[windows]]
name = "logs"
layout = "even-vertical"
`)

	p, err := Parse(data, FormatTOML, "api.toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.SessionName != "api" || p.ProjectRoot != "/srv/api" {
		t.Errorf("unexpected project: %+v", p)
	}
	if p.Virtualenv == nil || p.Virtualenv.PythonBinary != "python3.12" || p.Virtualenv.SitePackages {
		t.Errorf("Virtualenv = %+v", p.Virtualenv)
	}
	if p.Environment["PORT"] != "8080" {
		t.Errorf("PORT = %q", p.Environment["PORT"])
	}
	if len(p.Windows) != 2 || len(p.Windows[0].Panes) != 2 || p.Windows[1].Layout != "even-vertical" {
		t.Errorf("Windows = %+v", p.Windows)
	}
}

func TestParseVirtualenvShorthand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"true enables defaults", "virtualenv: true", true},
		{"false disables", "virtualenv: false", false},
		{"null disables", "virtualenv:", false},
		{"empty map disables", "virtualenv: {}", false},
		{"omitted disables", "", false},
		{"fields enable", "virtualenv:\n    site packages?: false", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := "session name: x\nproject root: /tmp\nwindows: []\n" + tt.value + "\n"
			p, err := Parse([]byte(data), FormatYAML, "x.yml")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if p.HasVirtualenv() != tt.want {
				t.Errorf("HasVirtualenv() = %v, want %v", p.HasVirtualenv(), tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		format  Format
		wantErr string
	}{
		{
			name:    "missing session name",
			data:    "project root: /tmp\nwindows: []\n",
			format:  FormatYAML,
			wantErr: "session name",
		},
		{
			name:    "missing windows",
			data:    "session name: x\nproject root: /tmp\n",
			format:  FormatYAML,
			wantErr: "windows",
		},
		{
			name:    "unknown key",
			data:    "session name: x\nproject root: /tmp\nwindows: []\nwindow: []\n",
			format:  FormatYAML,
			wantErr: "window",
		},
		{
			name:    "unknown layout",
			data:    "session name: x\nproject root: /tmp\nwindows:\n  - name: a\n    layout: sideways\n",
			format:  FormatYAML,
			wantErr: "layout",
		},
		{
			name:    "nested environment value",
			data:    "session name: x\nproject root: /tmp\nwindows: []\nenvironment:\n    A:\n        B: c\n",
			format:  FormatYAML,
			wantErr: "environment",
		},
		{
			name:    "yaml syntax",
			data:    "session name: [x\n",
			format:  FormatYAML,
			wantErr: "bad.yml",
		},
		{
			name:    "toml syntax",
			data:    "session name = x\n",
			format:  FormatTOML,
			wantErr: "bad.yml",
		},
		{
			name:    "empty file",
			data:    "",
			format:  FormatYAML,
			wantErr: "empty",
		},
		{
			name:    "unsupported format",
			data:    "{}",
			format:  Format("json"),
			wantErr: "unsupported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), tt.format, "bad.yml")
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseRawLayout(t *testing.T) {
	t.Parallel()

	data := "session name: x\nproject root: /tmp\nwindows:\n  - name: a\n    layout: \"bb62,159x48,0,0{79x48,0,0,79x48,80,0}\"\n"
	p, err := Parse([]byte(data), FormatYAML, "x.yml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !strings.HasPrefix(p.Windows[0].Layout, "bb62,") {
		t.Errorf("Layout = %q", p.Windows[0].Layout)
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"web", "123", "yes", "my project", "null"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			content, err := Template(name)
			if err != nil {
				t.Fatalf("Template() error = %v", err)
			}
			p, err := Parse([]byte(content), FormatYAML, name+".yml")
			if err != nil {
				t.Fatalf("rendered template does not parse: %v\n%s", err, content)
			}
			if p.SessionName != name {
				t.Errorf("SessionName = %q, want %q", p.SessionName, name)
			}
			if !p.HasVirtualenv() || len(p.Windows) != 2 || p.Windows[1].Layout != "main-vertical" {
				t.Errorf("unexpected template project: %+v", p)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.yml", FormatYAML, false},
		{"a.YAML", FormatYAML, false},
		{"a.toml", FormatTOML, false},
		{"a.json", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}
