package processor

import (
	"time"

	"github.com/skynet2/starling-ynab-importer/pkg/starling"
	"github.com/skynet2/starling-ynab-importer/pkg/ynab"
)

const defaultLookbackDays = 14

type Config struct {
	Bank            Bank
	Ledger          Ledger
	NotificationSvc NotificationSvc // optional
	Printer         Printer
	ChatID          int64

	YnabAccountID string
	// empty means the first budget returned by the ledger
	YnabBudgetID string

	StartDate           string
	LookbackDays        int
	StripTransferPrefix bool
	DryRun              bool

	Now func() time.Time
}

type MapperOptions struct {
	AccountID           string
	StripTransferPrefix bool
}

// RunResult describes a single pass of the pipeline. Fields are filled in as
// steps complete, so a failed run still reports how far it got.
type RunResult struct {
	Since             time.Time
	BudgetID          string
	Account           *starling.Account
	FeedItems         int
	Mapped            []*ynab.SaveTransaction
	Created           *ynab.SaveTransactionsResult
	PreviousUncleared int
	Updates           []*ynab.TransactionDetail
	Updated           *ynab.SaveTransactionsResult
	DryRun            bool
}

func (r *RunResult) Filtered() int {
	if r == nil {
		return 0
	}

	return r.FeedItems - len(r.Mapped)
}

func (r *RunResult) ImportedCount() int {
	if r == nil || r.Created == nil {
		return 0
	}

	return len(r.Created.TransactionIDs)
}

func (r *RunResult) DuplicateCount() int {
	if r == nil || r.Created == nil {
		return 0
	}

	return len(r.Created.DuplicateImportIDs)
}

func (r *RunResult) UpdatedCount() int {
	if r == nil || r.Updated == nil {
		return 0
	}

	return len(r.Updated.TransactionIDs)
}
