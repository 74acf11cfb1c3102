// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"bufio"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	// ConfirmOptions configures the Confirm prompt.
	ConfirmOptions struct {
		// Title is the question to display.
		Title string
		// Default is preselected in the interactive prompt. The line prompt
		// always treats anything but yes/y as no.
		Default bool
		// Config holds common prompt configuration.
		Config Config
	}

	confirmModel struct {
		title     string
		selection bool
		result    bool
		done      bool
		cancelled bool
	}
)

func newConfirmModel(opts ConfirmOptions) *confirmModel {
	return &confirmModel{title: opts.Title, selection: opts.Default}
}

// Init implements tea.Model.
func (m *confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.done = true
		m.cancelled = true
		return m, tea.Quit
	case "y", "Y":
		m.result = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.result = false
		m.done = true
		return m, tea.Quit
	case "left", "h":
		m.selection = true
	case "right", "l":
		m.selection = false
	case "up", "down", "tab", "shift+tab":
		m.selection = !m.selection
	case "enter", " ":
		m.result = m.selection
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m *confirmModel) View() string {
	if m.done {
		return ""
	}

	yes, no := inactiveStyle.Render("Yes"), inactiveStyle.Render("No")
	if m.selection {
		yes = activeStyle.Render("Yes")
	} else {
		no = activeStyle.Render("No")
	}

	return strings.Join([]string{
		titleStyle.Render(m.title),
		yes + "  " + no,
		helpStyle.Render("enter submit • y yes • n no • esc cancel"),
	}, "\n") + "\n"
}

// Confirm asks a yes/no question. The line prompt accepts yes or y in any case.
func Confirm(opts ConfirmOptions) (bool, error) {
	cfg := opts.Config
	if cfg.Accessible {
		return confirmLine(cfg, opts.Title)
	}

	p := tea.NewProgram(newConfirmModel(opts), tea.WithInput(cfg.input()), tea.WithOutput(cfg.output()))
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m := final.(*confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.result, nil
}

func confirmLine(cfg Config, title string) (bool, error) {
	fmt.Fprintf(cfg.output(), "%s [y/N] ", title)

	line, err := bufio.NewReader(cfg.input()).ReadString('\n')
	if err != nil && line == "" {
		// EOF without an answer declines.
		return false, nil
	}

	return IsYes(line), nil
}

// IsYes reports whether an answer means yes: "yes" or "y", in any case.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}
