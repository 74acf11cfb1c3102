// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Command is a single external process invocation.
type Command struct {
	// Name is the executable, resolved through PATH when it has no separator.
	Name string
	// Args are passed verbatim; no shell is involved.
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env is appended to the inherited environment.
	Env []string
}

// NewCommand creates a Command for name with args.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// Argv returns the full argument vector, executable first.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command as a shell-quoted line, suitable for logs and dry runs.
func (c Command) String() string {
	argv := c.Argv()
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted = append(quoted, QuoteArg(arg))
	}
	return strings.Join(quoted, " ")
}

// QuoteArg quotes arg for a POSIX shell when it contains anything that a shell
// would interpret. Plain words are returned unchanged.
func QuoteArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n\"'`$\\|&;<>()*?[]#~{}!") {
		return arg
	}
	q, err := syntax.Quote(arg, syntax.LangPOSIX)
	if err != nil {
		// Only reachable for strings POSIX shells cannot represent (NUL bytes).
		return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	return q
}
