package notifications

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
)

const (
	defaultTelegramURL = "https://api.telegram.org"
	// sendMessage rejects longer texts
	maxMessageRunes = 4096
	truncatedSuffix = "\n…"
)

// Telegram posts sync reports to a single chat through the bot API.
type Telegram struct {
	client   *req.Client
	apiToken string
	baseURL  string
}

type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type apiResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

func NewTelegram(
	apiToken string,
	cl *req.Client,
) *Telegram {
	return &Telegram{
		client:   cl,
		apiToken: apiToken,
		baseURL:  defaultTelegramURL,
	}
}

func (t *Telegram) SendMessage(
	ctx context.Context,
	chatID int64,
	text string,
) error {
	var result apiResponse

	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParam("token", t.apiToken).
		SetBody(&sendMessageRequest{
			ChatID:                chatID,
			Text:                  Truncate(text, maxMessageRunes),
			DisableWebPagePreview: true,
		}).
		SetSuccessResult(&result).
		Post(t.baseURL + "/bot{token}/sendMessage")
	if err != nil {
		return errors.Wrap(err, "failed to send telegram message")
	}

	if resp.IsErrorState() {
		return errors.Newf("telegram: unexpected status %d: %s", resp.StatusCode, resp.String())
	}

	if !result.Ok {
		return errors.Newf("telegram: message rejected: %s", result.Description)
	}

	return nil
}

// Truncate cuts text to at most limit runes, marking the cut with an ellipsis line.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	suffix := []rune(truncatedSuffix)

	return string(runes[:limit-len(suffix)]) + truncatedSuffix
}
