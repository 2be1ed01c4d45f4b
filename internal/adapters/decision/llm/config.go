package llm

import (
	"fmt"
	"strings"
	"time"
)

type Dialect string

const (
	DialectOllama Dialect = "ollama"
	DialectOpenAI Dialect = "openai"
)

const (
	defaultHistoryTurns   = 12
	defaultRequestTimeout = 2 * time.Minute
	maxResponseBytes      = 1 << 20
)

const DefaultSystemPrompt = `You are playing a parser-based text adventure.
Read the game's latest output and reply with exactly one game command on the first line,
for example "open mailbox" or "go north". You may explain your reasoning on later lines.
Never repeat a command that just failed in the same location.`

type Config struct {
	Dialect        Dialect
	BaseURL        string
	Model          string
	Temperature    float64
	HistoryTurns   int
	SystemPrompt   string
	RequestTimeout time.Duration
	// APIKeyRef names the secret holding the bearer token. Empty means no Authorization header.
	APIKeyRef string
}

func (c *Config) applyDefaults() {
	if c.HistoryTurns <= 0 {
		c.HistoryTurns = defaultHistoryTurns
	}
	if strings.TrimSpace(c.SystemPrompt) == "" {
		c.SystemPrompt = DefaultSystemPrompt
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
}

func (c Config) Validate() error {
	switch c.Dialect {
	case DialectOllama, DialectOpenAI:
	default:
		return fmt.Errorf("unsupported llm dialect %q", c.Dialect)
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("llm base url is required")
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("llm model is required")
	}

	return nil
}
