package common

import "github.com/cockroachdb/errors"

var (
	ErrNoAccounts = errors.New("starling returned no accounts")
	ErrNoBudgets  = errors.New("ynab returned no budgets")
)
