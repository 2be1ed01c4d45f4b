package human

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

// DecisionMaker asks the person at the terminal for each command.
type DecisionMaker struct {
	in  io.Reader
	out io.Writer

	mu      sync.Mutex
	initial string
	entered int
}

var _ ports.DecisionMaker = (*DecisionMaker)(nil)

func New(in io.Reader, out io.Writer) *DecisionMaker {
	return &DecisionMaker{in: in, out: out}
}

func (d *DecisionMaker) Initialize(_ context.Context, initialOutput string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.initial = initialOutput
	return nil
}

// ChooseCommand shows the latest game output and blocks until a command is entered.
// Esc or Ctrl+C returns context.Canceled.
func (d *DecisionMaker) ChooseCommand(ctx context.Context, state domain.GameState) (domain.Decision, error) {
	if err := ctx.Err(); err != nil {
		return domain.Decision{}, err
	}

	d.mu.Lock()
	story := d.initial
	d.mu.Unlock()
	if last, ok := state.LastTurn(); ok {
		story = last.Response
	}

	p := tea.NewProgram(
		newPromptModel(story, state.Turn+1),
		tea.WithInput(d.in),
		tea.WithOutput(d.out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Decision{}, ctxErr
		}
		return domain.Decision{}, fmt.Errorf("run command prompt: %w", err)
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return domain.Decision{}, fmt.Errorf("unexpected final prompt model type %T", finalModel)
	}
	if result.cancelled {
		return domain.Decision{}, context.Canceled
	}
	if !result.submitted {
		return domain.Decision{}, fmt.Errorf("command prompt closed without input")
	}

	d.mu.Lock()
	d.entered++
	d.mu.Unlock()

	return domain.Decision{Command: result.command()}, nil
}

func (d *DecisionMaker) Observe(context.Context, string, string) error {
	return nil
}

func (d *DecisionMaker) Reset(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.initial = ""
	d.entered = 0
	return nil
}

func (d *DecisionMaker) Metrics() domain.Metrics {
	d.mu.Lock()
	defer d.mu.Unlock()

	return domain.Metrics{"commands_entered": d.entered}
}
