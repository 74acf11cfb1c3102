// SPDX-License-Identifier: MPL-2.0

package project

import (
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

const starterTemplate = `# Shows up in 'tmux list-sessions' and on the left side of the status bar.
session name: {{ yaml .Name }}

# Optional; if provided, the virtualenv activate script will be sourced in all
# new windows and panes. Remove the whole block to run without a virtualenv.
virtualenv:
    python binary: /usr/bin/python
    site packages?: false
    # Defaults to <virtualenvs dir>/<session name>.
    # path: $HOME/.venv

# When starting a tenper session, all windows and panes will be changed to this
# directory.
project root: $HOME

# Environment variables (only available inside the tmux session).
environment:
    MYKEY: myvalue
    PATH: $PATH:/foo/bar/baz

windows:
  - name: One
    panes:
      - ls -l

  - name: Two
    # Layout of the panes: even-horizontal, even-vertical, main-horizontal,
    # main-vertical, or tiled. You can also specify the layout string in the
    # list-windows command (see the layout section section in tmux's man page).
    layout: main-vertical
    panes:
        - ls
        - vim
        - top
`

var starter = template.Must(template.New("project").Funcs(template.FuncMap{
	"yaml": yamlScalar,
}).Parse(starterTemplate))

// Template renders the commented starter file for a new project.
func Template(name string) (string, error) {
	var sb strings.Builder
	if err := starter.Execute(&sb, struct{ Name string }{Name: name}); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// yamlScalar quotes s only when YAML would otherwise read it as something else.
func yamlScalar(s string) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
