// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tenper-cli/internal/issue"
	"tenper-cli/internal/platform"

	"golang.org/x/exp/slices"
)

// Store reads and writes project files in a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created lazily.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding project files.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file backing name. When no file exists yet it returns the
// path a new YAML file would be written to.
func (s *Store) Path(name string) string {
	if path, ok := s.lookup(name); ok {
		return path
	}
	return filepath.Join(s.dir, name+extensions[0])
}

// Exists reports whether a project file exists for name.
func (s *Store) Exists(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

// checkName rejects names that cannot become a file in the store's directory.
func checkName(name string) error {
	if err := platform.CheckFileStem(name); err != nil {
		return issue.NewErrorContext().
			WithOperation("resolve project").
			WithSuggestion("Project names are file names: use letters, digits, '-', '_' or '.'").
			Wrap(err).
			BuildError()
	}
	return nil
}

func (s *Store) lookup(name string) (string, bool) {
	for _, ext := range extensions {
		path := filepath.Join(s.dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load reads and parses the project called name.
func (s *Store) Load(name string) (*Project, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	path, ok := s.lookup(name)
	if !ok {
		return nil, issue.NewErrorContext().
			WithOperation("load project").
			WithResource(s.Path(name)).
			WithSuggestion(fmt.Sprintf("Run 'tenper edit %s' to create it", name)).
			WithSuggestion("Run 'tenper list' to see the available projects").
			WithIssue(issue.ProjectNotFoundId).
			Wrap(fmt.Errorf("%w: %s", ErrNotFound, name)).
			BuildError()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.WrapWithContext(err, "read project", path)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	p, err := Parse(data, format, path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse project").
			WithResource(path).
			WithSuggestion(fmt.Sprintf("Run 'tenper edit %s' to fix the file", name)).
			WithIssue(issue.ProjectParseErrorId).
			Wrap(err).
			BuildError()
	}

	return p, nil
}

// List returns the sorted names of all projects. A missing directory is
// treated as empty.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !slices.Contains(extensions, ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if name == "" || slices.Contains(names, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

// Create writes the starter template for name unless a file already exists.
// It returns the project's path and whether a file was written.
func (s *Store) Create(name string) (string, bool, error) {
	if err := checkName(name); err != nil {
		return "", false, err
	}

	if path, ok := s.lookup(name); ok {
		return path, false, nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create %s: %w", s.dir, err)
	}

	content, err := Template(name)
	if err != nil {
		return "", false, err
	}

	path := s.Path(name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, true, nil
}

// Remove deletes the project file and, when it was the last one, the
// directory itself. It returns the removed path.
func (s *Store) Remove(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	path, ok := s.lookup(name)
	if !ok {
		return "", issue.NewErrorContext().
			WithOperation("delete project").
			WithResource(s.Path(name)).
			WithIssue(issue.ProjectNotFoundId).
			Wrap(fmt.Errorf("%w: %s", ErrNotFound, name)).
			BuildError()
	}

	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", path, err)
	}

	// Fails harmlessly when other files remain.
	_ = os.Remove(s.dir)

	return path, nil
}
