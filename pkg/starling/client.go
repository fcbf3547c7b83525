package starling

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"

	"github.com/skynet2/starling-ynab-importer/pkg/common"
)

// ChangesSinceLayout is the timestamp format the feed endpoint expects.
const ChangesSinceLayout = "2006-01-02T15:04:05.000Z"

type Client struct {
	cl          *req.Client
	accessToken string
	baseURL     string
}

func NewClient(
	accessToken string,
	baseURL string,
	cl *req.Client,
) *Client {
	return &Client{
		cl:          cl,
		accessToken: accessToken,
		baseURL:     baseURL,
	}
}

func (c *Client) ListAccounts(ctx context.Context) ([]*Account, error) {
	var apiResp accountsResponse

	resp, err := c.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(c.accessToken).
		SetSuccessResult(&apiResp).
		Get(c.baseURL + "/api/v2/accounts")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list starling accounts")
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("starling accounts: unexpected status %d: %s", resp.StatusCode, resp.String())
	}

	return apiResp.Accounts, nil
}

// GetPrimaryAccount returns the first account of the token holder.
func (c *Client) GetPrimaryAccount(ctx context.Context) (*Account, error) {
	accounts, err := c.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, common.ErrNoAccounts
	}

	return accounts[0], nil
}

func (c *Client) GetFeedItemsChangedSince(
	ctx context.Context,
	accountUID string,
	categoryUID string,
	since time.Time,
) ([]*FeedItem, error) {
	var apiResp feedItemsResponse

	resp, err := c.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(c.accessToken).
		SetPathParams(map[string]string{
			"accountUid":  accountUID,
			"categoryUid": categoryUID,
		}).
		SetQueryParam("changesSince", since.UTC().Format(ChangesSinceLayout)).
		SetSuccessResult(&apiResp).
		Get(c.baseURL + "/api/v2/feed/account/{accountUid}/category/{categoryUid}")
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch starling feed items")
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("starling feed: unexpected status %d: %s", resp.StatusCode, resp.String())
	}

	return apiResp.FeedItems, nil
}
