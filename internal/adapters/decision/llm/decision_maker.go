package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/ports"
)

// DecisionMaker asks a chat model for the next command.
type DecisionMaker struct {
	cfg     Config
	client  ports.HTTPDoer
	secrets ports.SecretStore
	clock   ports.Clock
	logger  *slog.Logger

	mu      sync.Mutex
	initial string
	key     string
	stats   stats
}

type stats struct {
	requests         int64
	failures         int64
	promptTokens     int64
	completionTokens int64
	latencyMillis    int64
}

var _ ports.DecisionMaker = (*DecisionMaker)(nil)

func New(cfg Config, client ports.HTTPDoer, secrets ports.SecretStore, clock ports.Clock, logger *slog.Logger) (*DecisionMaker, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &DecisionMaker{
		cfg:     cfg,
		client:  client,
		secrets: secrets,
		clock:   clock,
		logger:  logger.With("dialect", string(cfg.Dialect), "model", cfg.Model),
	}, nil
}

func (d *DecisionMaker) Initialize(_ context.Context, initialOutput string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.initial = initialOutput
	return nil
}

func (d *DecisionMaker) ChooseCommand(ctx context.Context, state domain.GameState) (domain.Decision, error) {
	d.mu.Lock()
	messages := buildMessages(d.cfg.SystemPrompt, d.initial, state, d.cfg.HistoryTurns)
	d.mu.Unlock()

	started := d.clock.Now()
	reply, err := d.complete(ctx, messages)
	elapsed := d.clock.Now().Sub(started)

	d.mu.Lock()
	d.stats.requests++
	d.stats.latencyMillis += elapsed.Milliseconds()
	if err != nil {
		d.stats.failures++
	} else {
		d.stats.promptTokens += reply.promptTokens
		d.stats.completionTokens += reply.completionTokens
	}
	d.mu.Unlock()

	if err != nil {
		return domain.Decision{}, err
	}

	command, reasoning, err := parseCommand(reply.content)
	if err != nil {
		d.mu.Lock()
		d.stats.failures++
		d.mu.Unlock()
		return domain.Decision{}, fmt.Errorf("parse model reply: %w", err)
	}

	d.logger.DebugContext(ctx, "model chose command", "turn", state.Turn+1, "command", command, "latency", elapsed)
	return domain.Decision{Command: command, Reasoning: reasoning}, nil
}

func (d *DecisionMaker) Observe(context.Context, string, string) error {
	return nil
}

func (d *DecisionMaker) Reset(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.initial = ""
	d.stats = stats{}
	return nil
}

func (d *DecisionMaker) Metrics() domain.Metrics {
	d.mu.Lock()
	defer d.mu.Unlock()

	return domain.Metrics{
		"requests":          d.stats.requests,
		"failures":          d.stats.failures,
		"prompt_tokens":     d.stats.promptTokens,
		"completion_tokens": d.stats.completionTokens,
		"total_latency_ms":  d.stats.latencyMillis,
	}
}

func (d *DecisionMaker) apiKey(ctx context.Context) (string, error) {
	if strings.TrimSpace(d.cfg.APIKeyRef) == "" || d.secrets == nil {
		return "", nil
	}

	d.mu.Lock()
	cached := d.key
	d.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	key, err := d.secrets.Get(ctx, d.cfg.APIKeyRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", fmt.Errorf("api key %q is not stored; run `glkpilot key set`: %w", d.cfg.APIKeyRef, err)
		}
		return "", fmt.Errorf("load api key: %w", err)
	}

	d.mu.Lock()
	d.key = strings.TrimSpace(key)
	d.mu.Unlock()

	return strings.TrimSpace(key), nil
}
