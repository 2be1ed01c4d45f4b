package domain

import (
	"fmt"
	"strings"
	"time"
)

type SessionID string

type StopReason string

const (
	StopReasonGameEnded StopReason = "game_ended"
	StopReasonMaxTurns  StopReason = "max_turns"
	StopReasonError     StopReason = "error"
)

type SessionResult struct {
	ID         SessionID
	StartedAt  time.Time
	FinishedAt time.Time
	Success    bool
	Turns      int
	History    []GameTurn
	Metrics    Metrics
	Error      string
	Warnings   []string
	GameEnded  bool
	StopReason StopReason
	Metadata   map[string]string
}

func (r SessionResult) Validate() error {
	if strings.TrimSpace(string(r.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if r.Turns != len(r.History) {
		return fmt.Errorf("turn count %d does not match history length %d", r.Turns, len(r.History))
	}
	for i, turn := range r.History {
		if turn.Number != i+1 {
			return fmt.Errorf("turn %d has number %d", i+1, turn.Number)
		}
	}

	return nil
}

func (r SessionResult) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		return 0
	}

	return r.FinishedAt.Sub(r.StartedAt)
}
