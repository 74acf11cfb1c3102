// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform file naming rules.
package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFileName is the sentinel error wrapped by InvalidFileNameError.
var ErrInvalidFileName = errors.New("invalid file name")

// windowsReservedNames are device names Windows reserves regardless of extension.
var windowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// InvalidFileNameError reports a name that cannot be used as a file name.
type InvalidFileNameError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidFileNameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidFileName for errors.Is.
func (e *InvalidFileNameError) Unwrap() error { return ErrInvalidFileName }

// IsWindowsReservedName checks if a filename is a Windows reserved name.
// Only the part before the first dot counts, so "con.yml" is reserved too.
func IsWindowsReservedName(name string) bool {
	upper := strings.ToUpper(name)
	if idx := strings.Index(upper, "."); idx != -1 {
		upper = upper[:idx]
	}
	return windowsReservedNames[upper]
}

// CheckFileStem returns an error when name cannot be the stem of a file in a
// single directory on every supported platform.
func CheckFileStem(name string) error {
	var reason string
	switch {
	case strings.TrimSpace(name) == "":
		reason = "must not be empty"
	case name == "." || name == "..":
		reason = "must not be a relative directory"
	case strings.ContainsAny(name, `/\`):
		reason = "must not contain path separators"
	case strings.ContainsRune(name, 0):
		reason = "must not contain NUL"
	case IsWindowsReservedName(name):
		reason = "is a reserved device name on Windows"
	default:
		return nil
	}
	return &InvalidFileNameError{Name: name, Reason: reason}
}
