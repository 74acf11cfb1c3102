// SPDX-License-Identifier: MPL-2.0

package issue

import "github.com/charmbracelet/glamour"

const (
	ProjectNotFoundId Id = iota + 1
	ProjectParseErrorId
	TmuxNotFoundId
	SessionFailedId
	VirtualenvFailedId
	EditorFailedId
	ConfigLoadFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		extLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

// Render renders the issue as styled terminal output using the given glamour
// style ("dark", "light", "notty", "auto" or a path to a JSON style).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	projectNotFoundIssue = &Issue{
		id: ProjectNotFoundId,
		mdMsg: `
# No project configuration found!

tenper looks for project files in its configs directory
(` + "`~/.tenper`" + ` unless ` + "`configs_dir`" + ` is set in the tenper config).
A project named **web** is read from ` + "`web.yml`" + `, ` + "`web.yaml`" + ` or ` + "`web.toml`" + `.

## Things you can try:
- List the projects tenper knows about:
~~~
$ tenper list
~~~

- Create the project from the starter template:
~~~
$ tenper edit web
~~~`,
	}

	projectParseErrorIssue = &Issue{
		id: ProjectParseErrorId,
		mdMsg: `
# Failed to parse the project configuration!

The project file is not valid YAML/TOML or does not match the expected layout.

## Common issues:
- Missing required keys: ` + "`session name`" + `, ` + "`project root`" + `, ` + "`windows`" + `
- A window without a ` + "`name`" + `
- ` + "`panes`" + ` written as a mapping instead of a list

## Example:
~~~yaml
session name: web
project root: $HOME/src/web
windows:
  - name: editor
    panes:
      - vim
  - name: servers
    layout: even-horizontal
    panes:
      - make serve
      - make watch
~~~`,
	}

	tmuxNotFoundIssue = &Issue{
		id: TmuxNotFoundId,
		mdMsg: `
# tmux not found!

tenper drives tmux to build sessions, and tmux is not installed or not in your PATH.

## Things you can try:
- Install tmux:
  - Debian/Ubuntu: ` + "`sudo apt install tmux`" + `
  - Fedora: ` + "`sudo dnf install tmux`" + `
  - macOS: ` + "`brew install tmux`" + `

- Point tenper at a specific binary in ~/.config/tenper/config.cue:
~~~cue
tmux: {
	binary: "/opt/homebrew/bin/tmux"
}
~~~`,
		extLinks: []HttpLink{"https://github.com/tmux/tmux/wiki/Installing"},
	}

	sessionFailedIssue = &Issue{
		id: SessionFailedId,
		mdMsg: `
# Failed to build the tmux session!

One of the tmux commands used to build the session exited with an error.
The session may be left half-built.

## Things you can try:
- See every command tenper runs:
~~~
$ tenper --verbose web
~~~

- Print the command sequence without running it:
~~~
$ tenper --dry-run web
~~~

- Remove the partial session and retry:
~~~
$ tmux kill-session -t web
~~~

- Check the ` + "`layout`" + ` values; custom layout strings must come from ` + "`tmux list-windows`" + `.`,
	}

	virtualenvFailedIssue = &Issue{
		id: VirtualenvFailedId,
		mdMsg: `
# Failed to create the virtualenv!

The ` + "`virtualenv`" + ` command exited with an error.

## Things you can try:
- Check that virtualenv is installed:
~~~
$ python3 -m pip install --user virtualenv
~~~

- Check the ` + "`python binary`" + ` in the project file points to an existing interpreter
- Recreate the virtualenv from scratch:
~~~
$ tenper rebuild web
~~~`,
		extLinks: []HttpLink{"https://virtualenv.pypa.io/"},
	}

	editorFailedIssue = &Issue{
		id: EditorFailedId,
		mdMsg: `
# Failed to launch the editor!

tenper opens project files with ` + "`$EDITOR`" + `, then the ` + "`editor`" + ` key of its
config file, then ` + "`vi`" + `.

## Things you can try:
- Set your editor for the current shell:
~~~
$ export EDITOR=vim
~~~

- Or set it permanently in ~/.config/tenper/config.cue:
~~~cue
editor: "code --wait"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the tenper configuration file.

## Configuration file locations:
- Linux: ~/.config/tenper/config.cue
- macOS: ~/Library/Application Support/tenper/config.cue
- Windows: %APPDATA%\tenper\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ tenper config init
~~~

- Remove the config file to use defaults

## Example configuration:
~~~cue
configs_dir: "/home/me/.tenper"
virtualenvs_dir: "/home/me/.virtualenvs"
editor: "vim"
ui: {
	verbose: false
}
~~~`,
	}

	issues = map[Id]*Issue{
		projectNotFoundIssue.Id():   projectNotFoundIssue,
		projectParseErrorIssue.Id(): projectParseErrorIssue,
		tmuxNotFoundIssue.Id():      tmuxNotFoundIssue,
		sessionFailedIssue.Id():     sessionFailedIssue,
		virtualenvFailedIssue.Id():  virtualenvFailedIssue,
		editorFailedIssue.Id():      editorFailedIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
