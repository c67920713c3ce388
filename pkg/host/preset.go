package host

import (
	"context"

	"dngen/pkg/model"
)

// Preset answers prompts with values supplied up front (for example from
// command-line flags) and defers everything else to Fallback.
type Preset struct {
	Fallback Host

	Name string
	Kind *model.Schematic
}

func (p *Preset) ActiveDocument() string {
	return p.Fallback.ActiveDocument()
}

func (p *Preset) WorkspaceRoots() []string {
	return p.Fallback.WorkspaceRoots()
}

func (p *Preset) PromptText(ctx context.Context, prompt TextPrompt) (string, bool, error) {
	if p.Name != "" {
		return p.Name, true, nil
	}
	return p.Fallback.PromptText(ctx, prompt)
}

func (p *Preset) PromptChoice(ctx context.Context, title string, choices []model.Schematic) (model.Schematic, bool, error) {
	if p.Kind != nil {
		return *p.Kind, true, nil
	}
	return p.Fallback.PromptChoice(ctx, title, choices)
}

func (p *Preset) Notify(severity Severity, message string) {
	p.Fallback.Notify(severity, message)
}

var _ Host = (*Preset)(nil)
