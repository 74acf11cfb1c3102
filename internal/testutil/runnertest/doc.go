// SPDX-License-Identifier: MPL-2.0

// Package runnertest provides a runtime.Runner that records commands instead of
// executing them, for asserting exact command sequences in tests.
package runnertest
