package ports

import (
	"context"

	"github.com/bnema/glkpilot/internal/domain"
)

// DecisionMaker chooses commands. Reset is called at the start of every session so an
// instance can be reused across games.
type DecisionMaker interface {
	Initialize(ctx context.Context, initialOutput string) error
	ChooseCommand(ctx context.Context, state domain.GameState) (domain.Decision, error)
	Observe(ctx context.Context, command string, response string) error
	Reset(ctx context.Context) error
	Metrics() domain.Metrics
}
