package system

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"dngen/pkg/runner"
)

// CommandRunner is re-exported from pkg/runner so callers only import system
// for the live implementation.
type CommandRunner = runner.CommandRunner

// LiveCommandRunner runs commands on the live system. The child inherits the
// environment of the current process.
type LiveCommandRunner struct{}

// Run executes cmd in dir and captures stdout and stderr separately.
func (r *LiveCommandRunner) Run(ctx context.Context, dir string, cmd runner.Command) (runner.Result, error) {
	var c *exec.Cmd
	if cmd.Shell {
		c = exec.CommandContext(ctx, "sh", "-c", cmd.String())
	} else {
		c = exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	}
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := runner.Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		execErr := &runner.ExecError{
			Command:  cmd.String(),
			ExitCode: -1,
			Stderr:   stderr.String(),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}
		return result, execErr
	}
	return result, nil
}

var _ CommandRunner = (*LiveCommandRunner)(nil)
