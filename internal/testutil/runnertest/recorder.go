// SPDX-License-Identifier: MPL-2.0

package runnertest

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"tenper-cli/internal/runtime"
)

type (
	// Call is one recorded invocation.
	Call struct {
		Command     runtime.Command
		Interactive bool
	}

	// Recorder is a runtime.Runner that records every command and answers with
	// stubbed results. Unstubbed commands succeed with empty output.
	Recorder struct {
		mu    sync.Mutex
		calls []Call
		stubs []stub
	}

	stub struct {
		prefix []string
		result runtime.Result
	}
)

var _ runtime.Runner = (*Recorder)(nil)

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Stub registers the output returned for commands whose arguments start with
// prefix. Later stubs take precedence over earlier ones.
func (r *Recorder) Stub(output string, prefix ...string) *Recorder {
	return r.add(prefix, runtime.Result{Output: output})
}

// Fail makes commands whose arguments start with prefix exit with code and stderr.
func (r *Recorder) Fail(code runtime.ExitCode, stderr string, prefix ...string) *Recorder {
	return r.add(prefix, runtime.Result{ExitCode: code, ErrOutput: stderr})
}

// FailStart makes commands whose arguments start with prefix fail to start.
func (r *Recorder) FailStart(err error, prefix ...string) *Recorder {
	if err == nil {
		err = errors.New("failed to start")
	}
	return r.add(prefix, runtime.Result{ExitCode: 1, Error: err})
}

func (r *Recorder) add(prefix []string, result runtime.Result) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stubs = append(r.stubs, stub{prefix: prefix, result: result})
	return r
}

// Run implements runtime.Runner.
func (r *Recorder) Run(_ context.Context, cmd runtime.Command) *runtime.Result {
	return r.record(cmd, false)
}

// RunInteractive implements runtime.Runner.
func (r *Recorder) RunInteractive(_ context.Context, cmd runtime.Command) *runtime.Result {
	return r.record(cmd, true)
}

func (r *Recorder) record(cmd runtime.Command, interactive bool) *runtime.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{Command: cmd, Interactive: interactive})

	for i := len(r.stubs) - 1; i >= 0; i-- {
		s := r.stubs[i]
		if len(cmd.Args) >= len(s.prefix) && slices.Equal(cmd.Args[:len(s.prefix)], s.prefix) {
			result := s.result
			result.Command = cmd
			return &result
		}
	}
	return &runtime.Result{Command: cmd}
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Lines returns each recorded command's arguments joined by spaces, without
// the binary name. Handy for comparing against an expected script.
func (r *Recorder) Lines() []string {
	calls := r.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = strings.Join(c.Command.Args, " ")
	}
	return lines
}

// Reset forgets recorded calls but keeps stubs.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
