package cmd

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bnema/glkpilot/internal/adapters/bridge"
	"github.com/bnema/glkpilot/internal/adapters/decision/deadline"
	"github.com/bnema/glkpilot/internal/adapters/decision/human"
	"github.com/bnema/glkpilot/internal/adapters/decision/llm"
	"github.com/bnema/glkpilot/internal/adapters/decision/scripted"
	"github.com/bnema/glkpilot/internal/adapters/engine/remglk"
	"github.com/bnema/glkpilot/internal/adapters/engine/script"
	transcriptrender "github.com/bnema/glkpilot/internal/adapters/render/transcript"
	tomlrepo "github.com/bnema/glkpilot/internal/adapters/repo/toml"
	chainstore "github.com/bnema/glkpilot/internal/adapters/secrets/chain"
	"github.com/bnema/glkpilot/internal/application"
	"github.com/bnema/glkpilot/internal/config"
	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/logs"
	"github.com/bnema/glkpilot/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scriptEngine selects the TOML story script engine instead of a RemGlk interpreter.
const scriptEngine = "script"

type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *logs.Logger

	transcripts *application.TranscriptService
	credentials *application.CredentialService
	secretStore ports.SecretStore

	renderSession func(domain.SessionResult, transcriptrender.RenderOptions) (string, error)
	renderList    func([]application.TranscriptSummary) (string, error)

	httpClient ports.HTTPDoer
	clock      ports.Clock
}

func newApp() *app {
	return &app{
		v:             viper.New(),
		renderSession: transcriptrender.Render,
		renderList:    transcriptrender.RenderList,
		httpClient:    http.DefaultClient,
		clock:         ports.SystemClock{},
	}
}

// wire loads configuration and builds the services. It runs after flag parsing so bound flags apply.
func (a *app) wire(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	logger, err := logs.New(logs.Options{
		Level:    cfg.Log.Level,
		Terminal: cmd.ErrOrStderr(),
		File:     cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}
	a.logger = logger

	repo, err := tomlrepo.NewRepository(a.v)
	if err != nil {
		return fmt.Errorf("wire transcript repository: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.Secrets.PassDir, cfg.Secrets.Dir)
	if err != nil {
		return fmt.Errorf("wire secret store chain: %w", err)
	}
	a.secretStore = secretStore

	a.transcripts = application.NewTranscriptService(repo, a.clock)
	a.credentials = application.NewCredentialService(secretStore)

	logger.Debug("configuration loaded",
		"config_file", a.v.ConfigFileUsed(),
		"transcripts", repo.Path(),
		"decision", cfg.Decision.Kind,
	)

	return nil
}

func (a *app) close() error {
	if a.logger == nil {
		return nil
	}
	return a.logger.Close()
}

// newInterpreter prepares the engine for story and wraps it in the bridge. Nothing is booted yet.
// Stories ending in .toml, or engine.interpreter = "script", run on the script engine.
func (a *app) newInterpreter(story string) (ports.Interpreter, string, error) {
	var (
		engine ports.Engine
		name   string
	)

	if a.cfg.Engine.Interpreter == scriptEngine || strings.EqualFold(filepath.Ext(story), ".toml") {
		storyScript, err := script.Load(story)
		if err != nil {
			return nil, "", err
		}
		a.logger.Debug("story script loaded", "title", storyScript.Title(), "path", story)
		engine, name = storyScript, scriptEngine
	} else {
		prepared, err := remglk.Prepare(story, remglk.Options{
			Interpreter: a.cfg.Engine.Interpreter,
			Args:        a.cfg.Engine.Args,
			Logger:      a.logger.Logger,
		})
		if err != nil {
			return nil, "", err
		}
		engine, name = prepared, filepath.Base(a.cfg.Engine.Interpreter)
	}

	return bridge.New(engine, bridge.Options{
		Width:  a.cfg.Engine.Width,
		Height: a.cfg.Engine.Height,
		Logger: a.logger.Logger,
	}), name, nil
}

// newDecisionMaker builds the configured decision maker, bounded by session.turn_timeout when set.
func (a *app) newDecisionMaker(cmd *cobra.Command) (ports.DecisionMaker, error) {
	var dm ports.DecisionMaker

	switch a.cfg.Decision.Kind {
	case config.DecisionScripted:
		loaded, err := scripted.Load(a.cfg.Decision.Commands)
		if err != nil {
			return nil, err
		}
		dm = loaded
	case config.DecisionLLM:
		built, err := llm.New(llm.Config{
			Dialect:        llm.Dialect(a.cfg.LLM.Dialect),
			BaseURL:        a.cfg.LLM.BaseURL,
			Model:          a.cfg.LLM.Model,
			Temperature:    a.cfg.LLM.Temperature,
			HistoryTurns:   a.cfg.LLM.HistoryTurns,
			SystemPrompt:   a.cfg.LLM.SystemPrompt,
			RequestTimeout: a.cfg.LLM.RequestTimeout,
			APIKeyRef:      a.apiKeyRef(),
		}, a.httpClient, a.secretStore, a.clock, a.logger.Logger)
		if err != nil {
			return nil, err
		}
		dm = built
	case config.DecisionHuman:
		dm = human.New(cmd.InOrStdin(), cmd.OutOrStdout())
	default:
		return nil, fmt.Errorf("unknown decision kind %q", a.cfg.Decision.Kind)
	}

	return deadline.Wrap(dm, a.cfg.Session.TurnTimeout), nil
}

// apiKeyRef is only set for hosted dialects; a local ollama needs no bearer token.
func (a *app) apiKeyRef() string {
	if llm.Dialect(a.cfg.LLM.Dialect) == llm.DialectOllama {
		return ""
	}
	return application.KeyRef(a.cfg.LLM.Dialect)
}
