package scripted

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/ports"
)

// DecisionMaker plays a fixed list of commands in order.
type DecisionMaker struct {
	commands []string
	next     int
	observed int
}

var _ ports.DecisionMaker = (*DecisionMaker)(nil)

func New(commands []string) *DecisionMaker {
	return &DecisionMaker{commands: slices.Clone(commands)}
}

// Load reads one command per line. Blank lines and lines starting with '#' are skipped.
func Load(path string) (*DecisionMaker, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open command file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var commands []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read command file: %w", err)
	}

	return New(commands), nil
}

func (d *DecisionMaker) Initialize(context.Context, string) error {
	return nil
}

func (d *DecisionMaker) ChooseCommand(ctx context.Context, _ domain.GameState) (domain.Decision, error) {
	if err := ctx.Err(); err != nil {
		return domain.Decision{}, err
	}
	if d.next >= len(d.commands) {
		return domain.Decision{}, fmt.Errorf("%w: played all %d commands", domain.ErrCommandsExhausted, len(d.commands))
	}

	command := d.commands[d.next]
	d.next++

	return domain.Decision{Command: command}, nil
}

func (d *DecisionMaker) Observe(context.Context, string, string) error {
	d.observed++
	return nil
}

func (d *DecisionMaker) Reset(context.Context) error {
	d.next = 0
	d.observed = 0
	return nil
}

func (d *DecisionMaker) Metrics() domain.Metrics {
	return domain.Metrics{
		"commands_played":    d.observed,
		"commands_remaining": len(d.commands) - d.next,
	}
}
