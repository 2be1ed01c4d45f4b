package ports

import (
	"context"

	"github.com/bnema/glkpilot/internal/glk"
)

// UpdateSink receives engine output. Calls are made one at a time, in arrival order.
type UpdateSink interface {
	Update(update glk.Update)
	Fail(err error)
}

type Engine interface {
	Boot(ctx context.Context, init glk.InitEvent, sink UpdateSink) error
	Accept(ctx context.Context, event glk.InputEvent) error
	Halt() error
}
