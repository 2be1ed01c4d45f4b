package remglk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"sync"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/glk"
	"github.com/bnema/glkpilot/internal/ports"
)

type Options struct {
	// Interpreter is a RemGlk build such as glulxe or bocfel, resolved through PATH.
	Interpreter string
	Args        []string
	Env         []string
	Logger      *slog.Logger
}

// Engine runs an interpreter subprocess and exchanges protocol JSON over its stdio.
type Engine struct {
	story       string
	interpreter string
	args        []string
	env         []string
	logger      *slog.Logger

	mu      sync.Mutex
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	encoder *json.Encoder
	done    chan struct{}
	halted  bool
}

var _ ports.Engine = (*Engine)(nil)

func Prepare(story string, opts Options) (*Engine, error) {
	if opts.Interpreter == "" {
		return nil, fmt.Errorf("%w: interpreter is required", domain.ErrEngineBootFailure)
	}

	interpreter, err := exec.LookPath(opts.Interpreter)
	if err != nil {
		return nil, fmt.Errorf("%w: locate interpreter: %w", domain.ErrEngineBootFailure, err)
	}

	info, err := os.Stat(story)
	if err != nil {
		return nil, fmt.Errorf("%w: story file: %w", domain.ErrEngineBootFailure, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: story file %q is a directory", domain.ErrEngineBootFailure, story)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		story:       story,
		interpreter: interpreter,
		args:        slices.Clone(opts.Args),
		env:         slices.Clone(opts.Env),
		logger:      logger.With("interpreter", opts.Interpreter),
	}, nil
}

func (e *Engine) Boot(ctx context.Context, init glk.InitEvent, sink ports.UpdateSink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd != nil {
		return errors.New("interpreter already booted")
	}

	args := append(slices.Clone(e.args), e.story)
	cmd := exec.Command(e.interpreter, args...)
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}
	cmd.Stderr = &lineLogger{logger: e.logger}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("open interpreter stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("open interpreter stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start interpreter: %w", err)
	}

	e.cmd = cmd
	e.stdin = stdin
	e.encoder = json.NewEncoder(stdin)
	e.done = make(chan struct{})

	go e.readUpdates(stdout, sink)

	if err := e.encoder.Encode(init); err != nil {
		return fmt.Errorf("send init event: %w", err)
	}

	e.logger.DebugContext(ctx, "interpreter started", "pid", cmd.Process.Pid, "story", e.story)
	return nil
}

func (e *Engine) Accept(ctx context.Context, event glk.InputEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd == nil || e.halted {
		return domain.ErrEngineNotRunning
	}

	if err := e.encoder.Encode(event); err != nil {
		return fmt.Errorf("write input event: %w", err)
	}

	return nil
}

// Halt stops the interpreter and waits for its output to drain. It must not be
// called from inside an UpdateSink callback.
func (e *Engine) Halt() error {
	e.mu.Lock()
	if e.cmd == nil || e.halted {
		e.mu.Unlock()
		return nil
	}
	e.halted = true
	cmd, stdin, done := e.cmd, e.stdin, e.done
	e.mu.Unlock()

	_ = stdin.Close()
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill interpreter: %w", err)
	}
	<-done

	return nil
}

func (e *Engine) readUpdates(stdout io.Reader, sink ports.UpdateSink) {
	defer close(e.done)

	decoder := json.NewDecoder(stdout)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			sink.Fail(e.exitError(err))
			return
		}

		update, err := glk.DecodeUpdate(raw)
		if err != nil {
			e.logger.Warn("skipping undecodable update", "error", err)
			continue
		}
		sink.Update(update)
	}
}

func (e *Engine) exitError(readErr error) error {
	if !errors.Is(readErr, io.EOF) {
		// The interpreter may be blocked reading stdin and would never exit on its own.
		if err := e.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			e.logger.Warn("kill interpreter after bad output", "error", err)
		}
	}
	waitErr := e.cmd.Wait()

	e.mu.Lock()
	halted := e.halted
	e.mu.Unlock()

	if halted {
		return io.EOF
	}
	if !errors.Is(readErr, io.EOF) {
		return fmt.Errorf("decode interpreter output: %w", readErr)
	}
	if waitErr != nil {
		return fmt.Errorf("interpreter exited: %w", waitErr)
	}

	return io.EOF
}
