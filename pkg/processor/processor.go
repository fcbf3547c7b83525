package processor

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/skynet2/starling-ynab-importer/pkg/common"
)

type Processor struct {
	cfg *Config
}

func NewProcessor(
	cfg *Config,
) *Processor {
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = defaultLookbackDays
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Processor{
		cfg: cfg,
	}
}

// Sync runs the pipeline once and reports the outcome. The error is logged
// here, so callers only need it for their exit status.
func (p *Processor) Sync(ctx context.Context) (*RunResult, error) {
	result, err := p.Run(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("sync failed")

		if p.cfg.Printer != nil {
			p.notify(ctx, p.cfg.Printer.Failure(ctx, result, err))
		}

		return result, err
	}

	if p.cfg.Printer != nil {
		p.notify(ctx, p.cfg.Printer.Report(ctx, result))
	}

	return result, nil
}

func (p *Processor) Run(ctx context.Context) (*RunResult, error) {
	lg := zerolog.Ctx(ctx)

	result := &RunResult{
		DryRun: p.cfg.DryRun,
		Since:  p.LookbackStart(ctx),
	}

	lg.Info().Time("since", result.Since).Bool("dry_run", p.cfg.DryRun).Msg("starting sync")

	account, err := p.cfg.Bank.GetPrimaryAccount(ctx)
	if err != nil {
		return result, errors.Wrap(err, "failed to get primary account")
	}
	result.Account = account

	items, err := p.cfg.Bank.GetFeedItemsChangedSince(ctx, account.AccountUID, account.DefaultCategory, result.Since)
	if err != nil {
		return result, errors.Wrap(err, "failed to get feed items")
	}
	result.FeedItems = len(items)

	budgetID, err := p.resolveBudgetID(ctx)
	if err != nil {
		return result, err
	}
	result.BudgetID = budgetID

	result.Mapped = MapFeedItems(items, MapperOptions{
		AccountID:           p.cfg.YnabAccountID,
		StripTransferPrefix: p.cfg.StripTransferPrefix,
	})

	lg.Info().
		Int("feed_items", result.FeedItems).
		Int("mapped", len(result.Mapped)).
		Int("filtered", result.Filtered()).
		Msg("mapped feed items")

	if err = p.insert(ctx, result); err != nil {
		return result, err
	}

	previous, err := p.cfg.Ledger.GetTransactionsByAccount(ctx, budgetID, p.cfg.YnabAccountID, result.Since)
	if err != nil {
		return result, errors.Wrap(err, "failed to get previous transactions")
	}

	uncleared := FilterUncleared(previous)
	result.PreviousUncleared = len(uncleared)
	result.Updates = ComputeUpdates(uncleared, result.Mapped)

	if err = p.update(ctx, result); err != nil {
		return result, err
	}

	return result, nil
}

func (p *Processor) insert(ctx context.Context, result *RunResult) error {
	lg := zerolog.Ctx(ctx)

	if len(result.Mapped) == 0 {
		lg.Info().Msg("nothing to import")
		return nil
	}

	if p.cfg.DryRun {
		lg.Info().Int("transactions", len(result.Mapped)).Msg("dry run: skipping import")
		return nil
	}

	created, err := p.cfg.Ledger.CreateTransactions(ctx, result.BudgetID, result.Mapped)
	if err != nil {
		return errors.Wrap(err, "failed to import transactions")
	}
	result.Created = created

	if result.DuplicateCount() > 0 {
		lg.Info().Int("skipped", result.DuplicateCount()).Msg("skipped transactions already imported")
	}

	lg.Info().Int("imported", result.ImportedCount()).Msg("imported transactions")

	return nil
}

func (p *Processor) update(ctx context.Context, result *RunResult) error {
	lg := zerolog.Ctx(ctx)

	if len(result.Updates) == 0 {
		lg.Info().Int("previous_uncleared", result.PreviousUncleared).Msg("no cleared transactions to update")
		return nil
	}

	if p.cfg.DryRun {
		lg.Info().Int("transactions", len(result.Updates)).Msg("dry run: skipping update")
		return nil
	}

	updated, err := p.cfg.Ledger.UpdateTransactions(ctx, result.BudgetID, result.Updates)
	if err != nil {
		return errors.Wrap(err, "failed to update transactions")
	}
	result.Updated = updated

	lg.Debug().Msg(spew.Sdump(updated))
	lg.Info().Int("updated", result.UpdatedCount()).Msg("updated transactions")

	return nil
}

func (p *Processor) resolveBudgetID(ctx context.Context) (string, error) {
	if p.cfg.YnabBudgetID != "" {
		return p.cfg.YnabBudgetID, nil
	}

	budgets, err := p.cfg.Ledger.ListBudgets(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to list budgets")
	}

	if len(budgets) == 0 {
		return "", common.ErrNoBudgets
	}

	zerolog.Ctx(ctx).Info().Str("budget_id", budgets[0].ID).Str("budget", budgets[0].Name).
		Msg("using first budget")

	return budgets[0].ID, nil
}

func (p *Processor) notify(ctx context.Context, text string) {
	if p.cfg.NotificationSvc == nil {
		return
	}

	if err := p.cfg.NotificationSvc.SendMessage(ctx, p.cfg.ChatID, text); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to send notification")
	}
}
