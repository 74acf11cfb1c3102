// SPDX-License-Identifier: MPL-2.0

package project

import (
	"fmt"
	"strings"

	"tenper-cli/internal/config"
)

// Expand returns a copy of the project with $VAR and ${VAR} references
// expanded in the project root, the virtualenv path and environment values.
// Unknown variables expand to the empty string. Any other text, including
// backticks, $(...) and $1, is kept as written. A leading ~ in paths is
// replaced with lookup("HOME").
func (p *Project) Expand(lookup func(string) string) (*Project, error) {
	out := *p
	out.Windows = append([]Window(nil), p.Windows...)

	root, err := expandPath(p.ProjectRoot, lookup)
	if err != nil {
		return nil, fmt.Errorf("project root: %w", err)
	}
	out.ProjectRoot = root

	if p.Virtualenv != nil {
		venv := *p.Virtualenv
		if venv.Path != "" {
			if venv.Path, err = expandPath(venv.Path, lookup); err != nil {
				return nil, fmt.Errorf("virtualenv path: %w", err)
			}
		}
		out.Virtualenv = &venv
	}

	if p.Environment != nil {
		out.Environment = make(map[string]string, len(p.Environment))
		for k, v := range p.Environment {
			expanded, err := config.ExpandVars(v, lookup)
			if err != nil {
				return nil, fmt.Errorf("environment %s: %w", k, err)
			}
			out.Environment[k] = expanded
		}
	}

	return &out, nil
}

func expandPath(path string, lookup func(string) string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		rest, err := config.ExpandVars(path[1:], lookup)
		return lookup("HOME") + rest, err
	}
	return config.ExpandVars(path, lookup)
}
