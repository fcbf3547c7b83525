package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skynet2/starling-ynab-importer/pkg/app"
	"github.com/skynet2/starling-ynab-importer/pkg/config"
	"github.com/skynet2/starling-ynab-importer/pkg/logging"
	"github.com/skynet2/starling-ynab-importer/pkg/printer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogPretty)

	handle := NewHandler(app.NewProcessor(cfg, nil), printer.NewPrinter(), logger)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("FUNCTIONS_CUSTOMHANDLER_PORT"); ok {
		listenAddr = ":" + val
	}

	srv := &http.Server{
		Handler:      NewRouter(handle),
		Addr:         listenAddr,
		WriteTimeout: 120 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	logger.Info().Str("addr", listenAddr).Msg("listening")

	if err = srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
