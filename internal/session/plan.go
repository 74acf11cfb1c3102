// SPDX-License-Identifier: MPL-2.0

package session

import (
	"io"

	"tenper-cli/internal/runtime"
)

// PlanRunner returns a runner that prints the commands a start would issue
// instead of running them. It answers as a fresh tmux server would: the
// session does not exist yet and base indices are 0.
func PlanRunner(out io.Writer) *runtime.DryRunner {
	return &runtime.DryRunner{
		Out: out,
		Outputs: map[string]string{
			"list-windows": "0: (planned)\n",
			"list-panes":   "0: (planned)\n",
		},
		ExitCodes: map[string]runtime.ExitCode{
			"has-session": 1,
		},
	}
}
