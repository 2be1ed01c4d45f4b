package domain

import (
	"maps"
	"slices"
	"time"
)

type GameTurn struct {
	Number    int
	Command   string
	Response  string
	CreatedAt time.Time
}

type GameState struct {
	Turn     int
	History  []GameTurn
	Ended    bool
	Metadata map[string]string
}

// NewGameState copies history and metadata so the snapshot never aliases its source.
func NewGameState(history []GameTurn, ended bool, metadata map[string]string) GameState {
	state := GameState{
		Turn:    len(history),
		History: slices.Clone(history),
		Ended:   ended,
	}
	if state.History == nil {
		state.History = []GameTurn{}
	}
	if metadata != nil {
		state.Metadata = maps.Clone(metadata)
	}

	return state
}

func (s GameState) LastTurn() (GameTurn, bool) {
	if len(s.History) == 0 {
		return GameTurn{}, false
	}

	return s.History[len(s.History)-1], true
}

type Decision struct {
	Command   string
	Reasoning string
}

type CommandResult struct {
	Output    string
	GameEnded bool
}

type Metrics map[string]any
