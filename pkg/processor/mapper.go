package processor

import (
	"regexp"
	"time"
	_ "time/tzdata"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/skynet2/starling-ynab-importer/pkg/starling"
	"github.com/skynet2/starling-ynab-importer/pkg/ynab"
)

const (
	// ynab milliunits are one order of magnitude finer than starling minor units
	milliunitsPerMinorUnit = 10
	bankTimezone           = "Europe/London"
)

var (
	bankLocation        = mustLoadLocation(bankTimezone)
	transferPrefixRegex = regexp.MustCompile(`^Transfer(\s*:)?\s*`)
	importableStatuses  = []starling.FeedItemStatus{
		starling.StatusUpcoming,
		starling.StatusPending,
		starling.StatusSettled,
	}
)

// MapFeedItems converts importable feed items into ynab transactions,
// keeping the input order.
func MapFeedItems(
	items []*starling.FeedItem,
	opts MapperOptions,
) []*ynab.SaveTransaction {
	return lo.FilterMap(items, func(item *starling.FeedItem, _ int) (*ynab.SaveTransaction, bool) {
		if !IsImportable(item) {
			return nil, false
		}

		return MapFeedItem(item, opts), true
	})
}

func IsImportable(item *starling.FeedItem) bool {
	return item.Amount.MinorUnits > 0 && lo.Contains(importableStatuses, item.Status)
}

func MapFeedItem(item *starling.FeedItem, opts MapperOptions) *ynab.SaveTransaction {
	payee := item.CounterPartyName
	if opts.StripTransferPrefix {
		payee = CleanPayeeName(payee)
	}

	return &ynab.SaveTransaction{
		AccountID:  opts.AccountID,
		Date:       TransactionDate(item.TransactionTime),
		Amount:     ToMilliunits(item.Amount.MinorUnits, item.Direction),
		PayeeName:  payee,
		CategoryID: nil,
		Memo:       item.Reference,
		Cleared:    MapClearedStatus(item.Status),
		Approved:   true,
		FlagColor:  nil,
		ImportID:   item.FeedItemUID,
	}
}

// TransactionDate is the calendar date of t on the bank's UK clock.
func TransactionDate(t time.Time) string {
	return t.In(bankLocation).Format(time.DateOnly)
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}

	return loc
}

// ToMilliunits scales minor units to ynab milliunits. Outflows are negative.
func ToMilliunits(minorUnits int64, direction starling.Direction) int64 {
	amount := decimal.NewFromInt(minorUnits).Mul(decimal.NewFromInt(milliunitsPerMinorUnit))

	if direction == starling.DirectionOut {
		amount = amount.Neg()
	}

	return amount.IntPart()
}

// CleanPayeeName drops a leading "Transfer" marker that starling puts on
// transfer counterparties.
func CleanPayeeName(name string) string {
	return transferPrefixRegex.ReplaceAllString(name, "")
}

func MapClearedStatus(status starling.FeedItemStatus) ynab.ClearedStatus {
	if status == starling.StatusSettled {
		return ynab.Cleared
	}

	return ynab.Uncleared
}
