package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/skynet2/starling-ynab-importer/pkg/app"
	"github.com/skynet2/starling-ynab-importer/pkg/config"
	"github.com/skynet2/starling-ynab-importer/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "starling-ynab-sync",
		Short:         "Import recent Starling transactions into a YNAB account",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				log.Error().Err(err).Msg("invalid configuration")
				return err
			}

			ctx := app.RunContext(cmd.Context(), logging.New(cfg.LogLevel, cfg.LogPretty))

			_, err = app.NewProcessor(cfg, nil).Sync(ctx)

			return err
		},
	}
}
