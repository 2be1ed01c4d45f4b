package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/glkpilot/internal/application"
	"github.com/spf13/cobra"
)

func newKeyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage chat model API keys",
		Long:  "Keys are kept in pass when it is installed and initialised, otherwise under secrets.dir.",
	}

	cmd.AddCommand(
		newKeySetCmd(app),
		newKeyRemoveCmd(app),
		newKeyCheckCmd(app),
	)

	return cmd
}

func newKeySetCmd(app *app) *cobra.Command {
	var (
		dialect string
		value   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the API key for an llm dialect (reads stdin when --value is omitted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if value == "" {
				read, err := readFirstLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read key from stdin: %w", err)
				}
				value = read
			}

			ref := application.KeyRef(app.dialectOr(dialect))
			if err := app.credentials.SetKey(cmd.Context(), application.SetKeyCommand{Ref: ref, Value: value}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", ref)
			return err
		},
	}

	cmd.Flags().StringVar(&dialect, "dialect", "", "llm dialect (default llm.dialect)")
	cmd.Flags().StringVar(&value, "value", "", "API key value")

	return cmd
}

func newKeyRemoveCmd(app *app) *cobra.Command {
	var dialect string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete the API key for an llm dialect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := application.KeyRef(app.dialectOr(dialect))
			if err := app.credentials.RemoveKey(cmd.Context(), application.RemoveKeyCommand{Ref: ref}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", ref)
			return err
		},
	}

	cmd.Flags().StringVar(&dialect, "dialect", "", "llm dialect (default llm.dialect)")

	return cmd
}

func newKeyCheckCmd(app *app) *cobra.Command {
	var dialect string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether an API key is stored for an llm dialect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.credentials.CheckKey(cmd.Context(), application.KeyRef(app.dialectOr(dialect)))
			if err != nil {
				return err
			}

			state := "not stored"
			if status.Stored {
				state = "stored"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", status.Ref, state)
			return err
		},
	}

	cmd.Flags().StringVar(&dialect, "dialect", "", "llm dialect (default llm.dialect)")

	return cmd
}

func (a *app) dialectOr(dialect string) string {
	if strings.TrimSpace(dialect) != "" {
		return dialect
	}
	return a.cfg.LLM.Dialect
}

func readFirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
