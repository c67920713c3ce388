// Package generate implements the "add file" flow: pick a folder, ask for a
// file name and a schematic, run the generator tool there and report back.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"dngen/pkg/config"
	"dngen/pkg/diff"
	"dngen/pkg/host"
	"dngen/pkg/log"
	"dngen/pkg/model"
	"dngen/pkg/runner"
	"dngen/pkg/system"
)

const (
	namePrompt      = "Please enter file name"
	namePlaceholder = "File name"
	kindPrompt      = "Select schematic"
)

// Generator wires a host, a command runner and a config together.
type Generator struct {
	Host   host.Host
	Runner runner.CommandRunner
	Config *config.Config
	Logger log.Logger
	// Report receives the change report when Config.ShowChanges is set.
	Report func(string)
}

// Outcome describes how an invocation ended.
type Outcome int

const (
	// OutcomeAborted means nothing ran: no folder or a cancelled prompt.
	OutcomeAborted Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "aborted"
	}
}

// ResolveFolder picks the working directory: the explicit target, else the
// active document's folder, else the first workspace root. It returns
// ok=false when none is available.
func ResolveFolder(h host.Host, target string) (string, bool) {
	if target != "" {
		return target, true
	}
	if doc := h.ActiveDocument(); doc != "" {
		return filepath.Dir(doc), true
	}
	if roots := h.WorkspaceRoots(); len(roots) > 0 {
		return roots[0], true
	}
	return "", false
}

// Plan resolves the folder and runs both prompts. ok=false means the user
// had nothing selected or cancelled; nothing should run.
func (g *Generator) Plan(ctx context.Context, target string) (dir string, cmd runner.Command, ok bool, err error) {
	dir, ok = ResolveFolder(g.Host, target)
	if !ok {
		g.Logger.Debug("No folder found, nothing to do")
		return "", runner.Command{}, false, nil
	}
	g.Logger.Debug("Resolved target folder", "dir", dir)

	fileName, ok, err := g.Host.PromptText(ctx, host.TextPrompt{
		Prompt:      namePrompt,
		Placeholder: namePlaceholder,
	})
	if err != nil {
		return "", runner.Command{}, false, err
	}
	fileName = strings.TrimSpace(fileName)
	if !ok || fileName == "" {
		g.Logger.Debug("File name prompt cancelled")
		return "", runner.Command{}, false, nil
	}

	schematic, ok, err := g.Host.PromptChoice(ctx, kindPrompt, model.Schematics())
	if err != nil {
		return "", runner.Command{}, false, err
	}
	if !ok {
		g.Logger.Debug("Schematic prompt cancelled")
		return "", runner.Command{}, false, nil
	}
	if !schematic.Valid() {
		return "", runner.Command{}, false, model.ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("unknown schematic %q", schematic.Value),
		}
	}

	return dir, g.Config.Command(schematic, fileName), true, nil
}

// Run performs one invocation. Failures of the generator tool are reported to
// the host as an error notification and do not produce an error; the returned
// error is reserved for prompts that could not be shown.
func (g *Generator) Run(ctx context.Context, target string) (Outcome, error) {
	dir, cmd, ok, err := g.Plan(ctx, target)
	if err != nil {
		return OutcomeAborted, err
	}
	if !ok {
		return OutcomeAborted, nil
	}
	return g.Execute(ctx, dir, cmd), nil
}

// Execute runs cmd in dir and notifies the host exactly once. Once started
// the child is not cancelled by ctx.
func (g *Generator) Execute(ctx context.Context, dir string, cmd runner.Command) Outcome {
	g.Logger.Debug("Running generator", "dir", dir, "command", cmd.String())

	var before diff.Snapshot
	if g.Config.ShowChanges {
		snap, err := diff.TakeSnapshot(system.AppFs, dir)
		if err != nil {
			g.Logger.Warn("Could not snapshot target folder", "dir", dir, "error", err)
		}
		before = snap
	}

	result, err := g.Runner.Run(context.WithoutCancel(ctx), dir, cmd)
	if err != nil {
		g.Logger.Debug("Generator failed", "command", cmd.String(), "error", err)
		g.Host.Notify(host.SeverityError, failureMessage(cmd, err))
		return OutcomeFailed
	}

	g.Host.Notify(host.SeverityInfo, successMessage(cmd, result))

	if before != nil {
		g.reportChanges(dir, before)
	}
	return OutcomeSucceeded
}

func (g *Generator) reportChanges(dir string, before diff.Snapshot) {
	after, err := diff.TakeSnapshot(system.AppFs, dir)
	if err != nil {
		g.Logger.Warn("Could not snapshot target folder", "dir", dir, "error", err)
		return
	}
	if g.Report != nil {
		g.Report(diff.Report(diff.Compare(before, after)))
	}
}

func successMessage(cmd runner.Command, result runner.Result) string {
	if out := strings.TrimSpace(string(result.Stdout)); out != "" {
		return out
	}
	if len(cmd.Args) >= 3 {
		return fmt.Sprintf("Generated %s %s", cmd.Args[1], cmd.Args[2])
	}
	return fmt.Sprintf("Ran %s", cmd.String())
}

func failureMessage(cmd runner.Command, err error) string {
	var execErr *runner.ExecError
	if errors.As(err, &execErr) {
		return execErr.Error()
	}
	return (&runner.ExecError{Command: cmd.String(), ExitCode: -1, Err: err}).Error()
}
