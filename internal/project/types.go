// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	// FormatYAML is used for .yml and .yaml files.
	FormatYAML Format = "yaml"
	// FormatTOML is used for .toml files.
	FormatTOML Format = "toml"
)

var (
	// ErrNotFound is returned when no project file exists for a name.
	ErrNotFound = errors.New("project not found")
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported project file format")

	// extensions lists project file extensions in lookup order.
	extensions = []string{".yml", ".yaml", ".toml"}
)

type (
	// Format identifies the syntax of a project file.
	Format string

	// Project is one tmux session definition.
	Project struct {
		SessionName string            `json:"session name"`
		Virtualenv  *Virtualenv       `json:"virtualenv,omitempty"`
		ProjectRoot string            `json:"project root"`
		Environment map[string]string `json:"environment,omitempty"`
		Windows     []Window          `json:"windows"`
	}

	// Virtualenv configures the project's Python virtualenv. A nil *Virtualenv
	// on Project means the project does not use one.
	Virtualenv struct {
		PythonBinary string `json:"python binary,omitempty"`
		SitePackages bool   `json:"site packages?,omitempty"`
		// Path overrides the default <virtualenvs dir>/<session name> location.
		Path string `json:"path,omitempty"`
	}

	// Window is a tmux window and the commands of its panes.
	Window struct {
		Name   string `json:"name"`
		Layout string `json:"layout,omitempty"`
		// Panes holds one command per pane; "" opens a pane without running anything.
		Panes []string `json:"panes,omitempty"`
	}

	// EnvVar is a single session environment variable.
	EnvVar struct {
		Key   string
		Value string
	}
)

// FormatFromPath returns the Format for a file name by extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// HasVirtualenv reports whether the project uses a virtualenv.
func (p *Project) HasVirtualenv() bool {
	return p.Virtualenv != nil
}

// SortedEnvironment returns the environment ordered by key.
func (p *Project) SortedEnvironment() []EnvVar {
	vars := make([]EnvVar, 0, len(p.Environment))
	for k, v := range p.Environment {
		vars = append(vars, EnvVar{Key: k, Value: v})
	}
	slices.SortFunc(vars, func(a, b EnvVar) int {
		return strings.Compare(a.Key, b.Key)
	})
	return vars
}
