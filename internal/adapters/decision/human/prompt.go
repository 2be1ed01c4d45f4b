package human

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	turn   lipgloss.Style
	story  lipgloss.Style
	prompt lipgloss.Style
	hint   lipgloss.Style
}

func newStyles() styles {
	return styles{
		turn:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		story:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		hint:   lipgloss.NewStyle().Faint(true),
	}
}

type promptModel struct {
	input     textinput.Model
	story     string
	turn      int
	styles    styles
	submitted bool
	cancelled bool
}

func newPromptModel(story string, turn int) promptModel {
	s := newStyles()

	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = s.prompt
	input.Placeholder = "look"
	input.CharLimit = 256
	input.Focus()

	return promptModel{
		input:  input,
		story:  strings.TrimSpace(story),
		turn:   turn,
		styles: s,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.turn.Render(turnLabel(m.turn)))
	b.WriteString("\n")
	if m.story != "" {
		b.WriteString(m.styles.story.Render(m.story))
		b.WriteString("\n\n")
	}

	if m.submitted || m.cancelled {
		b.WriteString(m.styles.prompt.Render("> "))
		b.WriteString(m.input.Value())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render("enter to send, esc to stop"))
	b.WriteString("\n")
	return b.String()
}

func (m promptModel) command() string {
	return strings.TrimSpace(m.input.Value())
}

func turnLabel(turn int) string {
	return fmt.Sprintf("Turn %d", max(turn, 1))
}
