package ports

import (
	"context"

	"github.com/bnema/glkpilot/internal/domain"
)

type Interpreter interface {
	Start(ctx context.Context) (string, error)
	ExecuteCommand(ctx context.Context, command string) (domain.CommandResult, error)
	Ended() bool
	Dispose() error
}
