package printer

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/skynet2/starling-ynab-importer/pkg/common"
	"github.com/skynet2/starling-ynab-importer/pkg/processor"
	"github.com/skynet2/starling-ynab-importer/pkg/ynab"
)

const milliunitsPerUnit = 1000

type Printer struct {
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) Report(
	ctx context.Context,
	result *processor.RunResult,
) string {
	var sb strings.Builder

	sb.WriteString(p.Stat(ctx, result))

	var duplicates []string
	if result.Created != nil {
		duplicates = result.Created.DuplicateImportIDs
	}

	fresh := lo.Filter(result.Mapped, func(tx *ynab.SaveTransaction, _ int) bool {
		return !lo.Contains(duplicates, tx.ImportID)
	})

	if len(fresh) > 0 {
		sb.WriteString("\n\n")
	}

	for _, tx := range fresh {
		p.FancyPrintTx(tx, &sb)
	}

	return sb.String()
}

func (p *Printer) Failure(
	ctx context.Context,
	result *processor.RunResult,
	err error,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sync failed: ❌\n%s", err))

	switch {
	case errors.Is(err, common.ErrNoAccounts):
		sb.WriteString("\n\nStarling returned no accounts for this token.")
	case errors.Is(err, common.ErrNoBudgets):
		sb.WriteString("\n\nYNAB returned no budgets. Set YNAB_BUDGET_ID or create a budget.")
	}

	if result != nil {
		sb.WriteString("\n\n")
		sb.WriteString(p.Stat(ctx, result))
	}

	return sb.String()
}

func (p *Printer) Stat(
	_ context.Context,
	result *processor.RunResult,
) string {
	var sb strings.Builder

	if result.DryRun {
		sb.WriteString("DRY RUN: nothing was written 🧪\n")
	}

	if result.Account != nil {
		sb.WriteString(fmt.Sprintf("Account: %s (%s)\n", result.Account.Name, result.Account.Currency))
	}

	if !result.Since.IsZero() {
		sb.WriteString(fmt.Sprintf("Since: %s\n", result.Since.Format("2006-01-02 15:04")))
	}

	sb.WriteString(fmt.Sprintf("Feed items: %v", result.FeedItems))
	sb.WriteString(fmt.Sprintf("\nSkipped: %v 🚯", result.Filtered()))
	sb.WriteString(fmt.Sprintf("\nImported: %v 🔥", result.ImportedCount()))
	sb.WriteString(fmt.Sprintf("\nDuplicates: %v ✨", result.DuplicateCount()))
	sb.WriteString(fmt.Sprintf("\nCleared: %v ✅", result.UpdatedCount()))

	if !result.DryRun && len(result.Mapped) > 0 && result.ImportedCount() == len(result.Mapped) {
		sb.WriteString("\n\nAll transactions are imported! 🎉")
	}

	return sb.String()
}

func (p *Printer) FancyPrintTx(tx *ynab.SaveTransaction, sb *strings.Builder) {
	if tx.Cleared == ynab.Cleared {
		sb.WriteString("Cleared: ✅\n")
	} else {
		sb.WriteString("Pending: ⏳\n")
	}

	sb.WriteString(fmt.Sprintf("Date: %s", tx.Date))
	sb.WriteString(fmt.Sprintf("\nAmount: %s", FormatMilliunits(tx.Amount)))
	sb.WriteString(fmt.Sprintf("\nPayee: %s", tx.PayeeName))

	if tx.Memo != "" {
		sb.WriteString(fmt.Sprintf("\nMemo: %s", tx.Memo))
	}

	sb.WriteString("\n====================\n")
}

// FormatMilliunits renders a ynab amount in whole currency units, e.g. -12500 as -12.50.
func FormatMilliunits(amount int64) string {
	return decimal.New(amount, 0).Div(decimal.NewFromInt(milliunitsPerUnit)).StringFixed(2)
}
