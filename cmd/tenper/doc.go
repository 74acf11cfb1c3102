// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the tenper command tree. Handlers receive an App and
// reach configuration, project files, tmux and the virtualenv provisioner
// through it, so tests can swap the command runner and the terminal streams.
package cmd
