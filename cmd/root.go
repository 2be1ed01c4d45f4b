package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/glkpilot/internal/config"
	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:   "glkpilot",
		Short: "glkpilot: let a program play interactive fiction",
		Long: "glkpilot runs Glk interactive fiction through a RemGlk interpreter and lets a scripted list, " +
			"a chat model or you choose each command. Every session is saved as a transcript.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ~/.glkpilot/config.toml)")
	flags.String("log-level", "", "log level: debug, info, warn or error (default warn)")
	flags.String("log-file", "", "also write debug JSON logs to this file")
	bindPersistentFlags(app, rootCmd, map[string]string{
		"config":    config.KeyConfigFile,
		"log-level": config.KeyLogLevel,
		"log-file":  config.KeyLogFile,
	})

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newTranscriptCmd(app),
		newKeyCmd(app),
	)

	return rootCmd
}

// bindFlags maps local flag names to config keys. A missing flag is a programming error.
func bindFlags(app *app, cmd *cobra.Command, keys map[string]string) {
	for name, key := range keys {
		if err := app.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag --%s to %s: %v", name, key, err))
		}
	}
}

func bindPersistentFlags(app *app, cmd *cobra.Command, keys map[string]string) {
	for name, key := range keys {
		if err := app.v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag --%s to %s: %v", name, key, err))
		}
	}
}
