package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	transcriptrender "github.com/bnema/glkpilot/internal/adapters/render/transcript"
	"github.com/bnema/glkpilot/internal/application"
	"github.com/bnema/glkpilot/internal/config"
	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/logs"
	"github.com/spf13/cobra"
)

func newPlayCmd(app *app) *cobra.Command {
	var (
		noSave bool
		brief  bool
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "play <story>",
		Short: "Play a story file until it ends or the turn limit is reached",
		Long: "Play boots the story in a RemGlk interpreter (or a .toml story script), lets the configured " +
			"decision maker choose every command, then saves and prints the transcript.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story := args[0]

			interp, engineName, err := app.newInterpreter(story)
			if err != nil {
				return fmt.Errorf("prepare story: %w", err)
			}

			dm, err := app.newDecisionMaker(cmd)
			if err != nil {
				_ = interp.Dispose()
				return fmt.Errorf("build decision maker: %w", err)
			}

			cfg := app.cfg
			storyName := filepath.Base(story)
			ctx := logs.WithAttrs(cmd.Context(), slog.String("story", storyName))

			svc := application.NewSessionService(interp, dm, app.clock, app.logger.Logger)
			play := application.PlayCommand{
				MaxTurns: cfg.Session.MaxTurns,
				Metadata: map[string]string{
					application.MetadataStory:    storyName,
					application.MetadataEngine:   engineName,
					application.MetadataDecision: cfg.Decision.Kind,
					application.MetadataMaxTurns: strconv.Itoa(cfg.Session.MaxTurns),
				},
			}

			var result domain.SessionResult
			if quiet || cfg.Decision.Kind == config.DecisionHuman {
				result = svc.Play(ctx, play)
			} else {
				status := func() string {
					return fmt.Sprintf("Playing %s: turn %d", storyName, len(svc.State().History)+1)
				}
				if err := runSessionSpinner(ctx, cmd.ErrOrStderr(), status, func() {
					result = svc.Play(ctx, play)
				}); err != nil {
					return err
				}
			}

			if !noSave {
				saved, err := app.transcripts.Save(ctx, result)
				if err != nil {
					app.logger.WarnContext(ctx, "transcript not saved", "error", err)
				} else {
					result = saved
				}
			}

			rendered, err := app.renderSession(result, transcriptrender.RenderOptions{
				MaxTurns: cfg.Session.MaxTurns,
				Brief:    brief,
			})
			if err != nil {
				return fmt.Errorf("render transcript: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return err
			}

			if !result.Success {
				return errors.New("session failed: " + result.Error)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("max-turns", 0, "stop after this many turns (default 100)")
	flags.String("decision", "", "decision maker: scripted, llm or human (default llm)")
	flags.String("commands", "", "command file for the scripted decision maker, one command per line")
	flags.String("interpreter", "", `RemGlk interpreter binary such as glulxe or bocfel, or "script"`)
	flags.Duration("turn-timeout", 0, "give up when choosing one command takes longer than this")
	flags.String("dialect", "", "llm dialect: ollama or openai")
	flags.String("base-url", "", "llm endpoint base url")
	flags.String("model", "", "llm model name")
	flags.BoolVar(&noSave, "no-save", false, "do not save the transcript")
	flags.BoolVar(&brief, "brief", false, "print the outcome without the turn history")
	flags.BoolVarP(&quiet, "quiet", "q", false, "hide the progress spinner")

	bindFlags(app, cmd, map[string]string{
		"max-turns":    config.KeySessionMaxTurns,
		"decision":     config.KeyDecisionKind,
		"commands":     config.KeyDecisionCommands,
		"interpreter":  config.KeyEngineInterpreter,
		"turn-timeout": config.KeySessionTurnTimeout,
		"dialect":      config.KeyLLMDialect,
		"base-url":     config.KeyLLMBaseURL,
		"model":        config.KeyLLMModel,
	})

	return cmd
}
