package host

import (
	"fmt"
	"strings"

	"dngen/pkg/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// textModel asks for a single line of text.
type textModel struct {
	prompt    string
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newTextModel(p TextPrompt) textModel {
	ti := textinput.New()
	ti.Placeholder = p.Placeholder
	ti.Prompt = "> "
	ti.CharLimit = 255
	ti.Width = 60
	ti.Focus()

	return textModel{prompt: p.Prompt, input: ti}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s\n",
		titleStyle.Render(m.prompt),
		m.input.View(),
		hintStyle.Render("enter to confirm, esc to cancel"))
}

// Value is the submitted text, or "" if the prompt was cancelled.
func (m textModel) Value() string {
	if !m.submitted {
		return ""
	}
	return m.input.Value()
}

// choiceModel is a single-choice picker over schematics.
type choiceModel struct {
	title     string
	choices   []model.Schematic
	cursor    int
	chosen    int
	cancelled bool
}

func newChoiceModel(title string, choices []model.Schematic) choiceModel {
	return choiceModel{title: title, choices: choices, chosen: -1}
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.choices) > 0 {
			m.chosen = m.cursor
			return m, tea.Quit
		}
	case "esc", "ctrl+c", "q":
		m.cancelled = true
		return m, tea.Quit
	default:
		// 1-9 pick directly
		if len(key.Runes) == 1 && key.Runes[0] >= '1' && key.Runes[0] <= '9' {
			idx := int(key.Runes[0] - '1')
			if idx < len(m.choices) {
				m.cursor = idx
				m.chosen = idx
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m choiceModel) View() string {
	if m.chosen >= 0 || m.cancelled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n")
	for i, c := range m.choices {
		line := fmt.Sprintf("%d. %s", i+1, c.Label)
		if i == m.cursor {
			sb.WriteString(cursorStyle.Render("> "))
			sb.WriteString(selectedStyle.Render(line))
		} else {
			sb.WriteString("  ")
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(hintStyle.Render("↑/↓ to move, enter to select, esc to cancel"))
	sb.WriteString("\n")
	return sb.String()
}

// Choice is the selected schematic and whether one was selected.
func (m choiceModel) Choice() (model.Schematic, bool) {
	if m.chosen < 0 || m.chosen >= len(m.choices) {
		return model.Schematic{}, false
	}
	return m.choices[m.chosen], true
}
