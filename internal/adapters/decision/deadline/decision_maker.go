package deadline

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/ports"
)

// DecisionMaker bounds each ChooseCommand call by a timeout. The wrapped call keeps
// running in the background if it ignores cancellation.
type DecisionMaker struct {
	ports.DecisionMaker
	timeout time.Duration
}

// Wrap returns dm unchanged when timeout is not positive.
func Wrap(dm ports.DecisionMaker, timeout time.Duration) ports.DecisionMaker {
	if timeout <= 0 {
		return dm
	}
	return &DecisionMaker{DecisionMaker: dm, timeout: timeout}
}

type choice struct {
	decision domain.Decision
	err      error
}

func (d *DecisionMaker) ChooseCommand(ctx context.Context, state domain.GameState) (domain.Decision, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	result := make(chan choice, 1)
	go func() {
		decision, err := d.DecisionMaker.ChooseCommand(ctx, state)
		result <- choice{decision: decision, err: err}
	}()

	select {
	case c := <-result:
		return c.decision, c.err
	case <-ctx.Done():
		return domain.Decision{}, fmt.Errorf("no command within %s: %w", d.timeout, ctx.Err())
	}
}
