package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/glk"
	"github.com/bnema/glkpilot/internal/ports"
)

type state int

const (
	stateNew state = iota
	stateBooting
	stateIdle
	stateAwaiting
	stateDisposed
)

func (s state) String() string {
	switch s {
	case stateNew:
		return "new"
	case stateBooting:
		return "booting"
	case stateIdle:
		return "idle"
	case stateAwaiting:
		return "awaiting"
	case stateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

type Options struct {
	Width  int
	Height int
	Logger *slog.Logger
}

type outcome struct {
	output string
	ended  bool
	err    error
}

// Bridge turns the engine's push-style update stream into Start/ExecuteCommand calls
// that each wait for the next input request.
type Bridge struct {
	engine ports.Engine
	init   glk.InitEvent
	logger *slog.Logger

	mu     sync.Mutex
	state  state
	gen    int
	ended  bool
	fatal  error
	output Aggregator
	router Router
	waiter chan outcome
}

var _ ports.Interpreter = (*Bridge)(nil)

func New(engine ports.Engine, opts Options) *Bridge {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Bridge{
		engine: engine,
		init:   glk.NewInitEvent(opts.Width, opts.Height),
		logger: logger,
	}
}

func (b *Bridge) Start(ctx context.Context) (string, error) {
	b.mu.Lock()
	switch b.state {
	case stateNew:
	case stateDisposed:
		b.mu.Unlock()
		return "", domain.ErrEngineNotRunning
	default:
		b.mu.Unlock()
		return "", fmt.Errorf("%w: already started", domain.ErrEngineNotRunning)
	}
	waiter := make(chan outcome, 1)
	b.waiter = waiter
	b.state = stateBooting
	b.mu.Unlock()

	if err := b.engine.Boot(ctx, b.init, sink{b}); err != nil {
		bootErr := fmt.Errorf("%w: %w", domain.ErrEngineBootFailure, err)
		if disposeErr := b.Dispose(); disposeErr != nil {
			return "", errors.Join(bootErr, disposeErr)
		}
		return "", bootErr
	}

	select {
	case out := <-waiter:
		if out.err != nil {
			bootErr := fmt.Errorf("%w: %w", domain.ErrEngineBootFailure, out.err)
			if disposeErr := b.Dispose(); disposeErr != nil {
				return "", errors.Join(bootErr, disposeErr)
			}
			return "", bootErr
		}
		b.logger.DebugContext(ctx, "engine ready", "ended", out.ended, "bytes", len(out.output))
		return out.output, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (b *Bridge) ExecuteCommand(ctx context.Context, command string) (domain.CommandResult, error) {
	b.mu.Lock()
	switch b.state {
	case stateIdle:
	case stateAwaiting:
		b.mu.Unlock()
		return domain.CommandResult{}, domain.ErrBridgeBusy
	default:
		current := b.state
		b.mu.Unlock()
		return domain.CommandResult{}, fmt.Errorf("%w: bridge is %s", domain.ErrEngineNotRunning, current)
	}
	if b.fatal != nil {
		err := b.fatal
		b.mu.Unlock()
		return domain.CommandResult{}, fmt.Errorf("%w: %w", domain.ErrEngineNotRunning, err)
	}

	event, request, err := b.router.Encode(command, b.gen)
	if err != nil {
		b.mu.Unlock()
		return domain.CommandResult{}, err
	}
	if dropped := b.output.Discard(); dropped > 0 {
		b.logger.DebugContext(ctx, "discarding output produced between turns", "bytes", dropped)
	}
	waiter := make(chan outcome, 1)
	b.waiter = waiter
	b.state = stateAwaiting
	b.mu.Unlock()

	if request.Mode == domain.InputModeChar && event.Value != command {
		b.logger.DebugContext(ctx, "char input keeps one key", "command", command, "sent", event.Value)
	}
	b.logger.DebugContext(ctx, "delivering input", "type", event.Type, "window", event.Window, "gen", event.Gen)

	if err := b.engine.Accept(ctx, event); err != nil {
		b.mu.Lock()
		if b.waiter == waiter {
			b.waiter = nil
			b.state = stateIdle
			b.router.Restore(request)
		}
		b.mu.Unlock()
		return domain.CommandResult{}, fmt.Errorf("deliver input: %w", err)
	}

	select {
	case out := <-waiter:
		return domain.CommandResult{Output: out.output, GameEnded: out.ended}, out.err
	case <-ctx.Done():
		return domain.CommandResult{}, ctx.Err()
	}
}

// Ended reports whether the engine has permanently disabled input.
func (b *Bridge) Ended() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ended
}

func (b *Bridge) Generation() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gen
}

func (b *Bridge) Pending() (domain.PendingInputRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.router.Pending()
}

func (b *Bridge) Save(context.Context) ([]byte, error) {
	return nil, domain.ErrSaveUnsupported
}

func (b *Bridge) Restore(context.Context, []byte) error {
	return domain.ErrSaveUnsupported
}

func (b *Bridge) Dispose() error {
	b.mu.Lock()
	if b.state == stateDisposed {
		b.mu.Unlock()
		return nil
	}
	booted := b.state != stateNew
	b.state = stateDisposed
	b.router.Clear()
	if b.waiter != nil {
		b.waiter <- outcome{err: domain.ErrEngineNotRunning}
		b.waiter = nil
	}
	b.mu.Unlock()

	if !booted {
		return nil
	}
	if err := b.engine.Halt(); err != nil {
		return fmt.Errorf("halt engine: %w", err)
	}

	return nil
}

func (b *Bridge) handleUpdate(update glk.Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateDisposed {
		return
	}

	if err := update.Validate(); err != nil {
		b.logger.Warn("skipping update", "error", err)
		return
	}

	if update.IsError() {
		err := fmt.Errorf("engine error: %s", update.Message)
		b.ended = true
		b.fatal = err
		b.router.Clear()
		b.resolveLocked(err)
		return
	}

	if update.Gen != nil {
		if *update.Gen < b.gen {
			b.logger.Warn("ignoring lower generation", "got", *update.Gen, "current", b.gen)
		} else {
			b.gen = *update.Gen
		}
	}

	if update.Ended() {
		b.ended = true
	}

	for _, block := range update.Content {
		if block.Kind() == glk.ContentUnknown {
			b.logger.Debug("skipping unrecognized content block", "window", block.WindowID())
			continue
		}
		b.output.Append(glk.ExtractText(block))
	}

	if b.router.Observe(update.Input) {
		b.resolveLocked(nil)
		return
	}

	if b.ended {
		b.router.Clear()
		b.resolveLocked(nil)
	}
}

func (b *Bridge) handleFailure(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateDisposed {
		return
	}

	b.ended = true
	b.router.Clear()

	if errors.Is(err, io.EOF) && b.state != stateBooting {
		b.resolveLocked(nil)
		return
	}

	b.fatal = err
	b.resolveLocked(err)
}

// resolveLocked hands the buffered output to the waiting caller, if any. Callers hold b.mu.
func (b *Bridge) resolveLocked(err error) {
	if b.waiter == nil {
		return
	}

	b.waiter <- outcome{output: b.output.Flush(), ended: b.ended, err: err}
	b.waiter = nil
	b.state = stateIdle
}

type sink struct {
	b *Bridge
}

func (s sink) Update(update glk.Update) {
	s.b.handleUpdate(update)
}

func (s sink) Fail(err error) {
	if err == nil {
		err = io.EOF
	}
	s.b.handleFailure(err)
}
