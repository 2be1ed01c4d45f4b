package application

import (
	"fmt"
	"strings"
)

// DefaultMaxTurns applies when PlayCommand.MaxTurns is zero or negative.
const DefaultMaxTurns = 100

type PlayCommand struct {
	MaxTurns int
	Metadata map[string]string
}

func (c PlayCommand) turnLimit() int {
	if c.MaxTurns <= 0 {
		return DefaultMaxTurns
	}
	return c.MaxTurns
}

type SetKeyCommand struct {
	Ref   string
	Value string
}

func (c SetKeyCommand) Validate() error {
	if strings.TrimSpace(c.Ref) == "" {
		return fmt.Errorf("key ref is required")
	}
	if strings.TrimSpace(c.Value) == "" {
		return fmt.Errorf("key value is required")
	}
	return nil
}

type RemoveKeyCommand struct {
	Ref string
}
