package host

import (
	"context"
	"fmt"
	"io"

	"dngen/pkg/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
)

// Terminal is a Host backed by an interactive terminal. Prompts are drawn on
// Out and read from In; notifications go to Notifications.
type Terminal struct {
	In            io.Reader
	Out           io.Writer
	Notifications io.Writer

	Active string
	Roots  []string
}

func NewTerminal(in io.Reader, out, notifications io.Writer, active string, roots []string) *Terminal {
	return &Terminal{
		In:            in,
		Out:           out,
		Notifications: notifications,
		Active:        active,
		Roots:         roots,
	}
}

func (t *Terminal) ActiveDocument() string {
	return t.Active
}

func (t *Terminal) WorkspaceRoots() []string {
	return t.Roots
}

func (t *Terminal) PromptText(ctx context.Context, p TextPrompt) (string, bool, error) {
	final, err := t.run(ctx, newTextModel(p))
	if err != nil {
		return "", false, fmt.Errorf("text prompt: %w", err)
	}
	m := final.(textModel)
	if !m.submitted {
		return "", false, nil
	}
	return m.Value(), true, nil
}

func (t *Terminal) PromptChoice(ctx context.Context, title string, choices []model.Schematic) (model.Schematic, bool, error) {
	final, err := t.run(ctx, newChoiceModel(title, choices))
	if err != nil {
		return model.Schematic{}, false, fmt.Errorf("choice prompt: %w", err)
	}
	choice, ok := final.(choiceModel).Choice()
	return choice, ok, nil
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)
	return p.Run()
}

func (t *Terminal) Notify(severity Severity, message string) {
	symbol, attr := "ℹ", color.FgGreen
	if severity == SeverityError {
		symbol, attr = "✗", color.FgRed
	}
	c := color.New(attr)
	fmt.Fprintf(t.Notifications, "%s %s\n", c.Sprint(symbol), message)
}

var _ Host = (*Terminal)(nil)
