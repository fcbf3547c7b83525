package processor

import (
	"context"
	"time"

	"github.com/skynet2/starling-ynab-importer/pkg/starling"
	"github.com/skynet2/starling-ynab-importer/pkg/ynab"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type Bank interface {
	GetPrimaryAccount(ctx context.Context) (*starling.Account, error)
	GetFeedItemsChangedSince(
		ctx context.Context,
		accountUID string,
		categoryUID string,
		since time.Time,
	) ([]*starling.FeedItem, error)
}

type Ledger interface {
	ListBudgets(ctx context.Context) ([]*ynab.Budget, error)
	GetTransactionsByAccount(
		ctx context.Context,
		budgetID string,
		accountID string,
		since time.Time,
	) ([]*ynab.TransactionDetail, error)
	CreateTransactions(
		ctx context.Context,
		budgetID string,
		transactions []*ynab.SaveTransaction,
	) (*ynab.SaveTransactionsResult, error)
	UpdateTransactions(
		ctx context.Context,
		budgetID string,
		transactions []*ynab.TransactionDetail,
	) (*ynab.SaveTransactionsResult, error)
}

type NotificationSvc interface {
	SendMessage(
		ctx context.Context,
		chatID int64,
		text string,
	) error
}

type Printer interface {
	Report(ctx context.Context, result *RunResult) string
	Failure(ctx context.Context, result *RunResult, err error) string
}
