// Package runner defines the types shared by command execution and its callers.
// It has no dependencies on the live system so tests can swap implementations.
package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// CommandRunner runs a command to completion in dir.
// A non-zero exit, a failure to start, or a signal is reported as *ExecError.
type CommandRunner interface {
	Run(ctx context.Context, dir string, cmd Command) (Result, error)
}

// Command is a program and its arguments. Arguments are passed to the
// program verbatim, never through a shell, unless Shell is set.
type Command struct {
	Name  string
	Args  []string
	Shell bool
}

// Argv returns the program followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command quoted for a POSIX shell.
func (c Command) String() string {
	return shellquote.Join(c.Argv()...)
}

// Result holds the captured streams of a finished process.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// ExecError describes a process that failed to start, exited non-zero, or
// was killed. ExitCode is -1 when no exit status is available.
type ExecError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("Command failed: %s", e.Command)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return msg + "\n" + stderr
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
