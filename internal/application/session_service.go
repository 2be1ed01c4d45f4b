package application

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/ports"
)

// Metadata keys set by the CLI on PlayCommand.Metadata.
const (
	MetadataStory    = "story"
	MetadataEngine   = "engine"
	MetadataDecision = "decision"
	MetadataMaxTurns = "max_turns"
)

// SessionService drives one game: it alternates between the decision maker and the interpreter
// until the game ends, the turn limit is reached, or a step fails.
type SessionService struct {
	interp ports.Interpreter
	dm     ports.DecisionMaker
	clock  ports.Clock
	logger *slog.Logger

	mu       sync.Mutex
	history  []domain.GameTurn
	ended    bool
	metadata map[string]string
}

func NewSessionService(interp ports.Interpreter, dm ports.DecisionMaker, clock ports.Clock, logger *slog.Logger) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &SessionService{
		interp: interp,
		dm:     dm,
		clock:  clock,
		logger: logger,
	}
}

// State returns a copy of the current game state.
func (s *SessionService) State() domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.NewGameState(s.history, s.ended, s.metadata)
}

// Play runs a full session. Failures are reported in the result; the interpreter is always disposed.
func (s *SessionService) Play(ctx context.Context, cmd PlayCommand) domain.SessionResult {
	started := s.clock.Now()

	s.mu.Lock()
	s.history = nil
	s.ended = false
	s.metadata = maps.Clone(cmd.Metadata)
	s.mu.Unlock()

	result := domain.SessionResult{
		ID:        NewSessionID(started),
		StartedAt: started,
		Metadata:  maps.Clone(cmd.Metadata),
	}

	limit := cmd.turnLimit()
	logger := s.logger.With("session", string(result.ID))
	logger.InfoContext(ctx, "session started", "max_turns", limit)

	runErr := s.run(ctx, logger, limit, &result)

	if err := s.interp.Dispose(); err != nil {
		logger.WarnContext(ctx, "dispose interpreter", "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("dispose interpreter: %v", err))
	}

	state := s.State()
	result.History = state.History
	result.Turns = len(state.History)
	result.GameEnded = state.Ended
	result.Metrics = s.collectMetrics(ctx, logger)
	result.FinishedAt = s.clock.Now()

	switch {
	case runErr != nil:
		result.Error = runErr.Error()
		result.StopReason = domain.StopReasonError
	case state.Ended:
		result.StopReason = domain.StopReasonGameEnded
	default:
		result.StopReason = domain.StopReasonMaxTurns
	}
	result.Success = result.Error == ""

	if runErr != nil {
		logger.ErrorContext(ctx, "session failed", "turns", result.Turns, "error", runErr)
	} else {
		logger.InfoContext(ctx, "session finished", "turns", result.Turns, "stop_reason", string(result.StopReason))
	}

	return result
}

func (s *SessionService) run(ctx context.Context, logger *slog.Logger, limit int, result *domain.SessionResult) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("session aborted: %v", recovered)
		}
	}()

	initial, err := s.interp.Start(ctx)
	if err != nil {
		return fmt.Errorf("start interpreter: %w", err)
	}
	if err := s.dm.Reset(ctx); err != nil {
		return fmt.Errorf("%w: reset: %w", domain.ErrDecisionMakerFailure, err)
	}
	if err := s.dm.Initialize(ctx, initial); err != nil {
		return fmt.Errorf("%w: initialize: %w", domain.ErrDecisionMakerFailure, err)
	}
	s.setEnded(s.interp.Ended())

	for {
		state := s.State()
		if state.Ended || state.Turn >= limit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		number := state.Turn + 1
		decision, err := s.dm.ChooseCommand(ctx, state)
		if err != nil {
			return fmt.Errorf("%w: turn %d: %w", domain.ErrDecisionMakerFailure, number, err)
		}

		response, err := s.interp.ExecuteCommand(ctx, decision.Command)
		if err != nil {
			return fmt.Errorf("execute command %q on turn %d: %w", decision.Command, number, err)
		}

		s.appendTurn(domain.GameTurn{
			Number:    number,
			Command:   decision.Command,
			Response:  response.Output,
			CreatedAt: s.clock.Now(),
		}, response.GameEnded)
		logger.DebugContext(ctx, "turn played", "turn", number, "command", decision.Command, "game_ended", response.GameEnded)

		if err := s.dm.Observe(ctx, decision.Command, response.Output); err != nil {
			logger.WarnContext(ctx, "decision maker observe failed", "turn", number, "error", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("observe turn %d: %v", number, err))
		}
	}
}

func (s *SessionService) appendTurn(turn domain.GameTurn, ended bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, turn)
	s.ended = ended
}

func (s *SessionService) setEnded(ended bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended = ended
}

func (s *SessionService) collectMetrics(ctx context.Context, logger *slog.Logger) (metrics domain.Metrics) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.WarnContext(ctx, "collect decision maker metrics", "panic", recovered)
			metrics = domain.Metrics{}
		}
	}()

	metrics = maps.Clone(s.dm.Metrics())
	if metrics == nil {
		metrics = domain.Metrics{}
	}
	return metrics
}

// NewSessionID derives a sortable id from the session start time.
func NewSessionID(started time.Time) domain.SessionID {
	return domain.SessionID(started.UTC().Format("20060102-150405.000"))
}
