package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"

	"github.com/skynet2/starling-ynab-importer/pkg/config"
	"github.com/skynet2/starling-ynab-importer/pkg/notifications"
	"github.com/skynet2/starling-ynab-importer/pkg/printer"
	"github.com/skynet2/starling-ynab-importer/pkg/processor"
	"github.com/skynet2/starling-ynab-importer/pkg/starling"
	"github.com/skynet2/starling-ynab-importer/pkg/ynab"
)

const httpTimeout = 30 * time.Second

// NewProcessor wires the api clients and the optional telegram notifier.
func NewProcessor(cfg *config.Config, cl *req.Client) *processor.Processor {
	if cl == nil {
		cl = req.C().SetTimeout(httpTimeout)
	}

	procCfg := &processor.Config{
		Bank:                starling.NewClient(cfg.StarlingAccessToken, cfg.StarlingAPIURL, cl),
		Ledger:              ynab.NewYnab(cfg.YnabAccessToken, cfg.YnabAPIURL, cl),
		Printer:             printer.NewPrinter(),
		YnabAccountID:       cfg.YnabAccountID,
		YnabBudgetID:        cfg.YnabBudgetID,
		StartDate:           cfg.StartDate,
		LookbackDays:        cfg.LookbackDays,
		StripTransferPrefix: cfg.StripTransferPrefix,
		DryRun:              cfg.DryRun,
	}

	if cfg.NotificationsEnabled() {
		procCfg.NotificationSvc = notifications.NewTelegram(cfg.TelegramBotToken, cl)
		procCfg.ChatID = cfg.TelegramChatID
	}

	return processor.NewProcessor(procCfg)
}

// RunContext tags the logger with a fresh run id and stores it in ctx.
func RunContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.With().Str("run_id", uuid.NewString()).Logger().WithContext(ctx)
}
