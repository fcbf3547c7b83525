package ynab

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
)

type Ynab struct {
	cl      *req.Client
	apiKey  string
	baseURL string
}

func NewYnab(
	apiKey string,
	baseURL string,
	cl *req.Client,
) *Ynab {
	return &Ynab{
		cl:      cl,
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

func (y *Ynab) request(ctx context.Context) *req.Request {
	return y.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(y.apiKey)
}

func (y *Ynab) ListBudgets(ctx context.Context) ([]*Budget, error) {
	var apiResp GenericApiResponse[BudgetsData]

	resp, err := y.request(ctx).
		SetSuccessResult(&apiResp).
		Get(y.baseURL + "/budgets")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ynab budgets")
	}

	if resp.IsErrorState() {
		return nil, responseError("list budgets", resp)
	}

	return apiResp.Data.Budgets, nil
}

// GetTransactionsByAccount returns account transactions dated on or after since.
func (y *Ynab) GetTransactionsByAccount(
	ctx context.Context,
	budgetID string,
	accountID string,
	since time.Time,
) ([]*TransactionDetail, error) {
	var apiResp GenericApiResponse[TransactionsData]

	resp, err := y.request(ctx).
		SetPathParams(map[string]string{
			"budgetId":  budgetID,
			"accountId": accountID,
		}).
		SetQueryParam("since_date", since.UTC().Format(time.DateOnly)).
		SetSuccessResult(&apiResp).
		Get(y.baseURL + "/budgets/{budgetId}/accounts/{accountId}/transactions")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ynab transactions")
	}

	if resp.IsErrorState() {
		return nil, responseError("list transactions", resp)
	}

	return apiResp.Data.Transactions, nil
}

// CreateTransactions bulk-inserts transactions. Import ids YNAB already knows
// come back in DuplicateImportIDs and are not inserted again.
func (y *Ynab) CreateTransactions(
	ctx context.Context,
	budgetID string,
	transactions []*SaveTransaction,
) (*SaveTransactionsResult, error) {
	var apiResp GenericApiResponse[SaveTransactionsResult]

	resp, err := y.request(ctx).
		SetPathParam("budgetId", budgetID).
		SetBody(saveTransactionsRequest[*SaveTransaction]{Transactions: transactions}).
		SetSuccessResult(&apiResp).
		Post(y.baseURL + "/budgets/{budgetId}/transactions")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ynab transactions")
	}

	if resp.IsErrorState() {
		return nil, responseError("create transactions", resp)
	}

	return &apiResp.Data, nil
}

func (y *Ynab) UpdateTransactions(
	ctx context.Context,
	budgetID string,
	transactions []*TransactionDetail,
) (*SaveTransactionsResult, error) {
	var apiResp GenericApiResponse[SaveTransactionsResult]

	resp, err := y.request(ctx).
		SetPathParam("budgetId", budgetID).
		SetBody(saveTransactionsRequest[*TransactionDetail]{Transactions: transactions}).
		SetSuccessResult(&apiResp).
		Patch(y.baseURL + "/budgets/{budgetId}/transactions")
	if err != nil {
		return nil, errors.Wrap(err, "failed to update ynab transactions")
	}

	if resp.IsErrorState() {
		return nil, responseError("update transactions", resp)
	}

	return &apiResp.Data, nil
}

func responseError(op string, resp *req.Response) error {
	var apiErr ErrorResponse
	if err := resp.UnmarshalJson(&apiErr); err == nil && apiErr.Error.ID != "" {
		return errors.Newf("ynab %s: unexpected status %d: %s %s: %s",
			op, resp.StatusCode, apiErr.Error.ID, apiErr.Error.Name, apiErr.Error.Detail)
	}

	return errors.Newf("ynab %s: unexpected status %d: %s", op, resp.StatusCode, resp.String())
}
