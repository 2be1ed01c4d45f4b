package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/glk"
	"github.com/bnema/glkpilot/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	StatusWindow = 1
	StoryWindow  = 2
)

var ErrStaleGeneration = errors.New("input carries a stale generation")

// Engine replays a Script through the windowing protocol. Updates are pushed
// synchronously from Boot and Accept.
type Engine struct {
	script Script

	mu      sync.Mutex
	sink    ports.UpdateSink
	next    int
	gen     int
	waiting *glk.InputRequest
	halted  bool
	inputs  []glk.InputEvent
}

var _ ports.Engine = (*Engine)(nil)

func New(script Script) (*Engine, error) {
	script.applyDefaults()
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEngineBootFailure, err)
	}

	return &Engine{script: script}, nil
}

func Load(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read script: %w", domain.ErrEngineBootFailure, err)
	}

	var script Script
	if err := toml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("%w: decode script: %w", domain.ErrEngineBootFailure, err)
	}

	return New(script)
}

func (e *Engine) Title() string {
	return e.script.Title
}

func (e *Engine) Boot(ctx context.Context, _ glk.InitEvent, sink ports.UpdateSink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	if e.sink != nil {
		e.mu.Unlock()
		return errors.New("script engine already booted")
	}
	e.sink = sink
	updates := e.runLocked()
	e.mu.Unlock()

	e.push(sink, updates)
	return nil
}

func (e *Engine) Accept(ctx context.Context, event glk.InputEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	if e.halted || e.sink == nil {
		e.mu.Unlock()
		return domain.ErrEngineNotRunning
	}
	if e.waiting == nil {
		e.mu.Unlock()
		return domain.ErrNoPendingInput
	}
	if event.Gen != e.gen {
		e.mu.Unlock()
		return fmt.Errorf("%w: got %d, want %d", ErrStaleGeneration, event.Gen, e.gen)
	}
	if event.Type != e.waiting.Type || event.Window != e.waiting.Window {
		e.mu.Unlock()
		return fmt.Errorf("unexpected %s input for window %d", event.Type, event.Window)
	}
	e.inputs = append(e.inputs, event)
	e.waiting = nil
	sink := e.sink
	updates := e.runLocked()
	e.mu.Unlock()

	e.push(sink, updates)
	return nil
}

func (e *Engine) Halt() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.halted = true
	return nil
}

// Inputs returns the events delivered so far.
func (e *Engine) Inputs() []glk.InputEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.inputs)
}

// runLocked builds the updates for the next run of steps, through the first one raising input.
func (e *Engine) runLocked() []glk.Update {
	var updates []glk.Update

	for e.next < len(e.script.Steps) {
		step := e.script.Steps[e.next]
		e.next++
		e.gen++

		update := e.stepUpdate(step)
		updates = append(updates, update)

		if step.Input != "" || step.Disable || step.Error != "" {
			return updates
		}
	}

	e.gen++
	return append(updates, glk.Update{Type: glk.TypeUpdate, Gen: intPtr(e.gen), Disable: true})
}

func (e *Engine) stepUpdate(step Step) glk.Update {
	if step.Error != "" {
		return glk.Update{Type: glk.TypeError, Message: step.Error}
	}

	update := glk.Update{Type: glk.TypeUpdate, Gen: intPtr(e.gen), Disable: step.Disable}
	if step.Status != "" {
		update.Content = append(update.Content, glk.GridContent{
			Window: StatusWindow,
			Lines:  []glk.GridLine{{Line: 0, Spans: glk.Spans{{Style: "normal", Text: step.Status}}}},
		})
	}
	if lines := paragraphs(step.Text); len(lines) > 0 {
		buffer := glk.BufferContent{Window: StoryWindow}
		for _, line := range lines {
			buffer.Paragraphs = append(buffer.Paragraphs, glk.Paragraph{Spans: glk.Spans{{Style: "normal", Text: line}}})
		}
		update.Content = append(update.Content, buffer)
	}
	if step.Input != "" {
		request := glk.InputRequest{Window: StoryWindow, Gen: e.gen, Type: step.Input}
		update.Input = []glk.InputRequest{request}
		e.waiting = &request
	}

	return update
}

func (e *Engine) push(sink ports.UpdateSink, updates []glk.Update) {
	for _, update := range updates {
		sink.Update(update)
	}
}

func intPtr(n int) *int {
	return &n
}
