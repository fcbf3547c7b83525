package starling

import (
	"time"
)

type Direction string

const (
	DirectionIn  = Direction("IN")
	DirectionOut = Direction("OUT")
)

type FeedItemStatus string

const (
	StatusUpcoming     = FeedItemStatus("UPCOMING")
	StatusPending      = FeedItemStatus("PENDING")
	StatusSettled      = FeedItemStatus("SETTLED")
	StatusReversed     = FeedItemStatus("REVERSED")
	StatusDeclined     = FeedItemStatus("DECLINED")
	StatusRefunded     = FeedItemStatus("REFUNDED")
	StatusRetrying     = FeedItemStatus("RETRYING")
	StatusAccountCheck = FeedItemStatus("ACCOUNT_CHECK")
)

type Account struct {
	AccountUID      string    `json:"accountUid"`
	AccountType     string    `json:"accountType"`
	DefaultCategory string    `json:"defaultCategory"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"createdAt"`
	Name            string    `json:"name"`
}

type Amount struct {
	Currency   string `json:"currency"`
	MinorUnits int64  `json:"minorUnits"`
}

type FeedItem struct {
	FeedItemUID              string         `json:"feedItemUid"`
	CategoryUID              string         `json:"categoryUid"`
	Amount                   Amount         `json:"amount"`
	SourceAmount             Amount         `json:"sourceAmount"`
	Direction                Direction      `json:"direction"`
	UpdatedAt                time.Time      `json:"updatedAt"`
	TransactionTime          time.Time      `json:"transactionTime"`
	SettlementTime           time.Time      `json:"settlementTime"`
	Source                   string         `json:"source"`
	SourceSubType            string         `json:"sourceSubType"`
	Status                   FeedItemStatus `json:"status"`
	CounterPartyType         string         `json:"counterPartyType"`
	CounterPartyUID          string         `json:"counterPartyUid"`
	CounterPartyName         string         `json:"counterPartyName"`
	CounterPartySubEntityUID string         `json:"counterPartySubEntityUid"`
	Reference                string         `json:"reference"`
	Country                  string         `json:"country"`
	SpendingCategory         string         `json:"spendingCategory"`
}

type accountsResponse struct {
	Accounts []*Account `json:"accounts"`
}

type feedItemsResponse struct {
	FeedItems []*FeedItem `json:"feedItems"`
}
