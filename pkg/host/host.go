// Package host abstracts the environment the generator is invoked from:
// where the user is working, how to ask them things, and how to tell them
// what happened.
package host

import (
	"context"

	"dngen/pkg/model"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "info"
}

// TextPrompt configures a free-text prompt.
type TextPrompt struct {
	Prompt      string
	Placeholder string
}

// Host is the context the generator runs against. The prompt methods return
// ok=false when the user cancelled; err is reserved for prompts that could
// not be shown at all.
type Host interface {
	// ActiveDocument returns the path of the document being edited, or "".
	ActiveDocument() string
	// WorkspaceRoots returns the open workspace folders in order.
	WorkspaceRoots() []string
	PromptText(ctx context.Context, p TextPrompt) (value string, ok bool, err error)
	PromptChoice(ctx context.Context, title string, choices []model.Schematic) (choice model.Schematic, ok bool, err error)
	Notify(severity Severity, message string)
}
