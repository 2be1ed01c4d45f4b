package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "GLKPILOT"
	configDir  = ".glkpilot"
	configName = "config"
	configType = "toml"
)

const (
	KeyConfigFile         = "config"
	KeyTranscriptsPath    = "transcripts.path"
	KeyEngineInterpreter  = "engine.interpreter"
	KeyEngineArgs         = "engine.args"
	KeyEngineWidth        = "engine.width"
	KeyEngineHeight       = "engine.height"
	KeySessionMaxTurns    = "session.max_turns"
	KeySessionTurnTimeout = "session.turn_timeout"
	KeyDecisionKind       = "decision.kind"
	KeyDecisionCommands   = "decision.commands"
	KeyLLMDialect         = "llm.dialect"
	KeyLLMBaseURL         = "llm.base_url"
	KeyLLMModel           = "llm.model"
	KeyLLMTemperature     = "llm.temperature"
	KeyLLMHistoryTurns    = "llm.history_turns"
	KeyLLMSystemPrompt    = "llm.system_prompt"
	KeyLLMRequestTimeout  = "llm.request_timeout"
	KeyLogLevel           = "log.level"
	KeyLogFile            = "log.file"
	KeySecretsDir         = "secrets.dir"
	KeySecretsPassDir     = "secrets.pass_dir"
)

// Decision maker kinds accepted by decision.kind.
const (
	DecisionScripted = "scripted"
	DecisionLLM      = "llm"
	DecisionHuman    = "human"
)

type Config struct {
	Home        string
	Transcripts string
	Engine      Engine
	Session     Session
	Decision    Decision
	LLM         LLM
	Log         Log
	Secrets     Secrets
}

type Engine struct {
	// Interpreter is a RemGlk-speaking binary such as glulxe or bocfel. "script" plays a TOML story script.
	Interpreter string
	Args        []string
	Width       int
	Height      int
}

type Session struct {
	MaxTurns    int
	TurnTimeout time.Duration
}

type Decision struct {
	Kind     string
	Commands string
}

type LLM struct {
	Dialect        string
	BaseURL        string
	Model          string
	Temperature    float64
	HistoryTurns   int
	SystemPrompt   string
	RequestTimeout time.Duration
}

type Log struct {
	Level string
	File  string
}

type Secrets struct {
	Dir     string
	PassDir string
}

// SetDefaults registers a default for every key under the given home directory.
func SetDefaults(v *viper.Viper, home string) {
	base := filepath.Join(home, configDir)

	v.SetDefault(KeyTranscriptsPath, filepath.Join(base, "transcripts.toml"))
	v.SetDefault(KeyEngineInterpreter, "glulxe")
	v.SetDefault(KeyEngineArgs, []string{})
	v.SetDefault(KeyEngineWidth, 80)
	v.SetDefault(KeyEngineHeight, 24)
	v.SetDefault(KeySessionMaxTurns, 100)
	v.SetDefault(KeySessionTurnTimeout, time.Duration(0))
	v.SetDefault(KeyDecisionKind, DecisionLLM)
	v.SetDefault(KeyDecisionCommands, "")
	v.SetDefault(KeyLLMDialect, "ollama")
	v.SetDefault(KeyLLMBaseURL, "http://localhost:11434")
	v.SetDefault(KeyLLMModel, "llama3.2:3b")
	v.SetDefault(KeyLLMTemperature, 0.4)
	v.SetDefault(KeyLLMHistoryTurns, 12)
	v.SetDefault(KeyLLMSystemPrompt, "")
	v.SetDefault(KeyLLMRequestTimeout, 2*time.Minute)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySecretsDir, filepath.Join(base, "secrets"))
	v.SetDefault(KeySecretsPassDir, "")
}

// Load reads ~/.glkpilot/config.toml (or the file named by the config key) when present,
// then GLKPILOT_* environment variables, on top of the defaults. Flags bound to v win.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	SetDefaults(v, home)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(home, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Home:        home,
		Transcripts: v.GetString(KeyTranscriptsPath),
		Engine: Engine{
			Interpreter: v.GetString(KeyEngineInterpreter),
			Args:        v.GetStringSlice(KeyEngineArgs),
			Width:       v.GetInt(KeyEngineWidth),
			Height:      v.GetInt(KeyEngineHeight),
		},
		Session: Session{
			MaxTurns:    v.GetInt(KeySessionMaxTurns),
			TurnTimeout: v.GetDuration(KeySessionTurnTimeout),
		},
		Decision: Decision{
			Kind:     strings.ToLower(strings.TrimSpace(v.GetString(KeyDecisionKind))),
			Commands: v.GetString(KeyDecisionCommands),
		},
		LLM: LLM{
			Dialect:        strings.ToLower(strings.TrimSpace(v.GetString(KeyLLMDialect))),
			BaseURL:        v.GetString(KeyLLMBaseURL),
			Model:          v.GetString(KeyLLMModel),
			Temperature:    v.GetFloat64(KeyLLMTemperature),
			HistoryTurns:   v.GetInt(KeyLLMHistoryTurns),
			SystemPrompt:   v.GetString(KeyLLMSystemPrompt),
			RequestTimeout: v.GetDuration(KeyLLMRequestTimeout),
		},
		Log: Log{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
		},
		Secrets: Secrets{
			Dir:     v.GetString(KeySecretsDir),
			PassDir: v.GetString(KeySecretsPassDir),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.Decision.Kind {
	case DecisionScripted, DecisionLLM, DecisionHuman:
	default:
		errs = append(errs, fmt.Errorf("unknown decision kind %q (want scripted, llm or human)", c.Decision.Kind))
	}
	if c.Decision.Kind == DecisionScripted && strings.TrimSpace(c.Decision.Commands) == "" {
		errs = append(errs, errors.New("scripted decision maker needs decision.commands"))
	}
	if c.Engine.Width <= 0 || c.Engine.Height <= 0 {
		errs = append(errs, fmt.Errorf("engine geometry %dx%d must be positive", c.Engine.Width, c.Engine.Height))
	}
	if c.Session.TurnTimeout < 0 {
		errs = append(errs, fmt.Errorf("session.turn_timeout must not be negative"))
	}
	if strings.TrimSpace(c.Transcripts) == "" {
		errs = append(errs, errors.New("transcripts.path is empty"))
	}

	return errors.Join(errs...)
}
