package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sessionDoneMsg struct{}

type sessionSpinnerModel struct {
	spinner spinner.Model
	status  func() string
	done    bool
}

func newSessionSpinnerModel(status func() string) sessionSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return sessionSpinnerModel{
		spinner: s,
		status:  status,
	}
}

func (m sessionSpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m sessionSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sessionDoneMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m sessionSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.status())
}

// runSessionSpinner shows status next to a spinner until play returns. play always runs to
// completion, even when ctx is canceled and the spinner stops early.
func runSessionSpinner(ctx context.Context, output io.Writer, status func() string, play func()) error {
	p := tea.NewProgram(
		newSessionSpinnerModel(status),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		play()
		p.Send(sessionDoneMsg{})
	}()

	_, err := p.Run()
	<-finished

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run session spinner: %w", err)
	}
	return nil
}
