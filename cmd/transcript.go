package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	transcriptrender "github.com/bnema/glkpilot/internal/adapters/render/transcript"
	"github.com/bnema/glkpilot/internal/application"
	"github.com/bnema/glkpilot/internal/domain"
	"github.com/spf13/cobra"
)

func newTranscriptCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Inspect saved session transcripts",
	}

	cmd.AddCommand(
		newTranscriptListCmd(app),
		newTranscriptShowCmd(app),
	)

	return cmd
}

func newTranscriptListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.transcripts.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, summaries)
			}

			rendered, err := app.renderList(summaries)
			if err != nil {
				return fmt.Errorf("render transcript list: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print summaries as JSON")

	return cmd
}

func newTranscriptShowCmd(app *app) *cobra.Command {
	var (
		asJSON bool
		brief  bool
	)

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one session transcript (default: the latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadTranscript(cmd, app.transcripts, args)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			rendered, err := app.renderSession(result, transcriptrender.RenderOptions{
				MaxTurns: recordedMaxTurns(result),
				Brief:    brief,
			})
			if err != nil {
				return fmt.Errorf("render transcript: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the transcript as JSON")
	cmd.Flags().BoolVar(&brief, "brief", false, "print the outcome without the turn history")

	return cmd
}

func loadTranscript(cmd *cobra.Command, svc *application.TranscriptService, args []string) (domain.SessionResult, error) {
	if len(args) == 0 {
		return svc.Latest(cmd.Context())
	}

	return svc.Get(cmd.Context(), domain.SessionID(args[0]))
}

// recordedMaxTurns reads the turn limit stored with the session; zero hides the budget bar.
func recordedMaxTurns(result domain.SessionResult) int {
	limit, err := strconv.Atoi(result.Metadata[application.MetadataMaxTurns])
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
