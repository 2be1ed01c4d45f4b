package script

import (
	"fmt"
	"strings"
)

const currentSchemaVersion = 1

type Script struct {
	Version int    `toml:"version"`
	Title   string `toml:"title"`
	Steps   []Step `toml:"steps"`
}

// Step is one update the engine pushes. A step with Input ends a run of steps.
type Step struct {
	Text    string `toml:"text,omitempty"`
	Status  string `toml:"status,omitempty"`
	Input   string `toml:"input,omitempty"`
	Disable bool   `toml:"disable,omitempty"`
	Error   string `toml:"error,omitempty"`
}

func (s *Script) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s Script) Validate() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported script schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("script has no steps")
	}
	for i, step := range s.Steps {
		switch step.Input {
		case "", "line", "char":
		default:
			return fmt.Errorf("step %d: unsupported input %q", i+1, step.Input)
		}
		if step.Input != "" && (step.Disable || step.Error != "") {
			return fmt.Errorf("step %d: input cannot be combined with disable or error", i+1)
		}
	}

	return nil
}

func paragraphs(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
