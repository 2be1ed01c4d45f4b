package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported transcripts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID         string            `toml:"id"`
	StartedAt  string            `toml:"started_at"`
	FinishedAt string            `toml:"finished_at"`
	Success    bool              `toml:"success"`
	StopReason string            `toml:"stop_reason"`
	GameEnded  bool              `toml:"game_ended"`
	Error      string            `toml:"error,omitempty"`
	Warnings   []string          `toml:"warnings,omitempty"`
	Metadata   map[string]string `toml:"metadata,omitempty"`
	Metrics    map[string]any    `toml:"metrics,omitempty"`
	Turns      []turnSchema      `toml:"turns"`
}

type turnSchema struct {
	Number    int    `toml:"number"`
	Command   string `toml:"command"`
	Response  string `toml:"response"`
	CreatedAt string `toml:"created_at"`
}
