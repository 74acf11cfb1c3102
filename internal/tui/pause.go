// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

type pauseModel struct {
	message string
	done    bool
}

// Init implements tea.Model.
func (m *pauseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *pauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *pauseModel) View() string {
	if m.done {
		return ""
	}
	return m.message + " " + helpStyle.Render("(Press any key to continue.)") + "\n"
}

// Pause shows message and waits for a key press (Enter in line mode).
func Pause(cfg Config, message string) error {
	if cfg.Accessible {
		fmt.Fprintf(cfg.output(), "%s (Press Enter to continue.)\n", message)
		_, err := bufio.NewReader(cfg.input()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}

	p := tea.NewProgram(&pauseModel{message: message}, tea.WithInput(cfg.input()), tea.WithOutput(cfg.output()))
	_, err := p.Run()
	return err
}
