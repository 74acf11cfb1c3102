// SPDX-License-Identifier: MPL-2.0

// Package tui provides the small interactive prompts tenper needs: a yes/no
// confirmation and a "press any key" pause. On a terminal they run as bubbletea
// programs; otherwise (pipes, scripts, ACCESSIBLE set) they fall back to plain
// line-based prompts so they keep working without a TTY.
package tui
