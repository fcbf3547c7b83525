package processor

import (
	"github.com/samber/lo"

	"github.com/skynet2/starling-ynab-importer/pkg/ynab"
)

// FilterUncleared keeps ledger transactions that are not marked cleared yet.
func FilterUncleared(transactions []*ynab.TransactionDetail) []*ynab.TransactionDetail {
	return lo.Filter(transactions, func(tx *ynab.TransactionDetail, _ int) bool {
		return tx.Cleared != ynab.Cleared
	})
}

// ComputeUpdates returns copies of previously imported transactions whose feed
// item has since settled, with amount and cleared status taken from the new
// mapping. Cleared transactions without a previous entry are skipped: they are
// inserted as new ones instead.
func ComputeUpdates(
	previous []*ynab.TransactionDetail,
	mapped []*ynab.SaveTransaction,
) []*ynab.TransactionDetail {
	clearedImportIDs := lo.FilterMap(mapped, func(tx *ynab.SaveTransaction, _ int) (string, bool) {
		return tx.ImportID, tx.Cleared == ynab.Cleared && tx.ImportID != ""
	})

	var updates []*ynab.TransactionDetail

	for _, importID := range clearedImportIDs {
		previousTx, ok := lo.Find(previous, func(tx *ynab.TransactionDetail) bool {
			return tx.ImportID == importID
		})
		if !ok {
			continue
		}

		mappedTx, _ := lo.Find(mapped, func(tx *ynab.SaveTransaction) bool {
			return tx.ImportID == importID
		})

		updated := *previousTx
		updated.Amount = mappedTx.Amount
		updated.Cleared = mappedTx.Cleared

		updates = append(updates, &updated)
	}

	return updates
}
