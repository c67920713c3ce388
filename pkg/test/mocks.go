package test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"dngen/pkg/host"
	"dngen/pkg/log"
	"dngen/pkg/model"
	"dngen/pkg/runner"
)

// RunCall records one invocation of MockCommandRunner.Run.
type RunCall struct {
	Dir     string
	Command runner.Command
}

// MockCommandRunner is a shared mock implementation of runner.CommandRunner.
// Responses and errors are keyed by the rendered command string.
type MockCommandRunner struct {
	mu        sync.Mutex
	Calls     []RunCall
	Responses map[string]runner.Result
	Errors    map[string]error
	// OnRun, if set, runs before the response is returned.
	OnRun func(dir string, cmd runner.Command)
}

func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Responses: make(map[string]runner.Result),
		Errors:    make(map[string]error),
	}
}

func (r *MockCommandRunner) Run(ctx context.Context, dir string, cmd runner.Command) (runner.Result, error) {
	r.mu.Lock()
	r.Calls = append(r.Calls, RunCall{Dir: dir, Command: cmd})
	onRun := r.OnRun
	key := cmd.String()
	result := r.Responses[key]
	err := r.Errors[key]
	r.mu.Unlock()

	if onRun != nil {
		onRun(dir, cmd)
	}
	return result, err
}

// SetStdout configures a successful run printing stdout.
func (r *MockCommandRunner) SetStdout(command, stdout string) {
	r.Responses[command] = runner.Result{Stdout: []byte(stdout)}
}

// SetExitCode configures a failed run with the given exit status and stderr.
func (r *MockCommandRunner) SetExitCode(command string, code int, stderr string) {
	r.Responses[command] = runner.Result{Stderr: []byte(stderr)}
	r.Errors[command] = &runner.ExecError{
		Command:  command,
		ExitCode: code,
		Stderr:   stderr,
		Err:      fmt.Errorf("exit status %d", code),
	}
}

// Commands returns the rendered commands in call order.
func (r *MockCommandRunner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmds := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		cmds = append(cmds, c.Command.String())
	}
	return cmds
}

// Notification is a message captured by MockHost.
type Notification struct {
	Severity host.Severity
	Message  string
}

// MockHost is a scripted host.Host. Prompt answers are consumed in order; a
// prompt with no scripted answer is treated as cancelled.
type MockHost struct {
	Active string
	Roots  []string

	TextAnswers   []string
	ChoiceAnswers []model.Schematic
	PromptErr     error

	TextPrompts   []host.TextPrompt
	ChoicePrompts [][]model.Schematic
	Notifications []Notification
}

func (h *MockHost) ActiveDocument() string {
	return h.Active
}

func (h *MockHost) WorkspaceRoots() []string {
	return h.Roots
}

func (h *MockHost) PromptText(ctx context.Context, p host.TextPrompt) (string, bool, error) {
	h.TextPrompts = append(h.TextPrompts, p)
	if h.PromptErr != nil {
		return "", false, h.PromptErr
	}
	if len(h.TextAnswers) == 0 {
		return "", false, nil
	}
	answer := h.TextAnswers[0]
	h.TextAnswers = h.TextAnswers[1:]
	return answer, true, nil
}

func (h *MockHost) PromptChoice(ctx context.Context, title string, choices []model.Schematic) (model.Schematic, bool, error) {
	h.ChoicePrompts = append(h.ChoicePrompts, choices)
	if h.PromptErr != nil {
		return model.Schematic{}, false, h.PromptErr
	}
	if len(h.ChoiceAnswers) == 0 {
		return model.Schematic{}, false, nil
	}
	answer := h.ChoiceAnswers[0]
	h.ChoiceAnswers = h.ChoiceAnswers[1:]
	return answer, true, nil
}

func (h *MockHost) Notify(severity host.Severity, message string) {
	h.Notifications = append(h.Notifications, Notification{Severity: severity, Message: message})
}

// PromptCount is the number of prompts of either kind shown so far.
func (h *MockHost) PromptCount() int {
	return len(h.TextPrompts) + len(h.ChoicePrompts)
}

// NotificationsOf returns the captured messages with the given severity.
func (h *MockHost) NotificationsOf(severity host.Severity) []string {
	var msgs []string
	for _, n := range h.Notifications {
		if n.Severity == severity {
			msgs = append(msgs, n.Message)
		}
	}
	return msgs
}

// MockLogger is a shared mock implementation of Logger for testing.
// It captures logged messages for verification.
type MockLogger struct {
	Messages []string
	Level    slog.Level
}

func NewMockLogger(level slog.Level) *MockLogger {
	return &MockLogger{
		Messages: []string{},
		Level:    level,
	}
}

func (l *MockLogger) Debug(msg string, args ...any) {
	if l.Level <= slog.LevelDebug {
		l.captureMessage("DEBUG", msg, args...)
	}
}

func (l *MockLogger) Info(msg string, args ...any) {
	if l.Level <= slog.LevelInfo {
		l.captureMessage("INFO", msg, args...)
	}
}

func (l *MockLogger) Warn(msg string, args ...any) {
	if l.Level <= slog.LevelWarn {
		l.captureMessage("WARN", msg, args...)
	}
}

func (l *MockLogger) Error(msg string, args ...any) {
	if l.Level <= slog.LevelError {
		l.captureMessage("ERROR", msg, args...)
	}
}

func (l *MockLogger) captureMessage(level, msg string, args ...any) {
	buf := &bytes.Buffer{}
	buf.WriteString(level)
	buf.WriteString(": ")
	buf.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(buf, " %v=%v", args[i], args[i+1])
	}
	l.Messages = append(l.Messages, buf.String())
}

func (l *MockLogger) Reset() {
	l.Messages = []string{}
}

// HasMessage checks if any captured message contains the given substring.
func (l *MockLogger) HasMessage(substring string) bool {
	for _, msg := range l.Messages {
		if bytes.Contains([]byte(msg), []byte(substring)) {
			return true
		}
	}
	return false
}

var (
	_ runner.CommandRunner = (*MockCommandRunner)(nil)
	_ host.Host            = (*MockHost)(nil)
	_ log.Logger           = (*MockLogger)(nil)
)
