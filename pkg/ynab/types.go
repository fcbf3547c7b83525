package ynab

type GenericApiResponse[T any] struct {
	Data T `json:"data"`
}

type ErrorResponse struct {
	Error struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	} `json:"error"`
}

type ClearedStatus string

const (
	Cleared    = ClearedStatus("cleared")
	Uncleared  = ClearedStatus("uncleared")
	Reconciled = ClearedStatus("reconciled")
)

type Budget struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LastModifiedOn string `json:"last_modified_on"`
}

type BudgetsData struct {
	Budgets []*Budget `json:"budgets"`
}

// SaveTransaction is a new transaction as submitted to the bulk create endpoint.
// Amount is in milliunits.
type SaveTransaction struct {
	AccountID  string        `json:"account_id"`
	Date       string        `json:"date"`
	Amount     int64         `json:"amount"`
	PayeeName  string        `json:"payee_name"`
	CategoryID *string       `json:"category_id"`
	Memo       string        `json:"memo"`
	Cleared    ClearedStatus `json:"cleared"`
	Approved   bool          `json:"approved"`
	FlagColor  *string       `json:"flag_color"`
	ImportID   string        `json:"import_id"`
}

// TransactionDetail is a transaction as stored by YNAB. Updates send it back
// whole, so every field the API returns is kept.
type TransactionDetail struct {
	ID                      string            `json:"id"`
	Date                    string            `json:"date"`
	Amount                  int64             `json:"amount"`
	Memo                    *string           `json:"memo"`
	Cleared                 ClearedStatus     `json:"cleared"`
	Approved                bool              `json:"approved"`
	FlagColor               *string           `json:"flag_color"`
	FlagName                *string           `json:"flag_name,omitempty"`
	AccountID               string            `json:"account_id"`
	AccountName             string            `json:"account_name,omitempty"`
	PayeeID                 *string           `json:"payee_id"`
	PayeeName               *string           `json:"payee_name"`
	CategoryID              *string           `json:"category_id"`
	CategoryName            *string           `json:"category_name,omitempty"`
	TransferAccountID       *string           `json:"transfer_account_id,omitempty"`
	TransferTransactionID   *string           `json:"transfer_transaction_id,omitempty"`
	MatchedTransactionID    *string           `json:"matched_transaction_id,omitempty"`
	ImportID                string            `json:"import_id,omitempty"`
	ImportPayeeName         *string           `json:"import_payee_name,omitempty"`
	ImportPayeeNameOriginal *string           `json:"import_payee_name_original,omitempty"`
	DebtTransactionType     *string           `json:"debt_transaction_type,omitempty"`
	Deleted                 bool              `json:"deleted"`
	Subtransactions         []*SubTransaction `json:"subtransactions,omitempty"`
}

type SubTransaction struct {
	ID                    string  `json:"id"`
	TransactionID         string  `json:"transaction_id"`
	Amount                int64   `json:"amount"`
	Memo                  *string `json:"memo"`
	PayeeID               *string `json:"payee_id"`
	PayeeName             *string `json:"payee_name"`
	CategoryID            *string `json:"category_id"`
	CategoryName          *string `json:"category_name,omitempty"`
	TransferAccountID     *string `json:"transfer_account_id,omitempty"`
	TransferTransactionID *string `json:"transfer_transaction_id,omitempty"`
	Deleted               bool    `json:"deleted"`
}

type TransactionsData struct {
	Transactions    []*TransactionDetail `json:"transactions"`
	ServerKnowledge int64                `json:"server_knowledge"`
}

// SaveTransactionsResult is returned by both bulk create and bulk update.
type SaveTransactionsResult struct {
	TransactionIDs     []string             `json:"transaction_ids"`
	DuplicateImportIDs []string             `json:"duplicate_import_ids"`
	Transactions       []*TransactionDetail `json:"transactions"`
	ServerKnowledge    int64                `json:"server_knowledge"`
}

type saveTransactionsRequest[T any] struct {
	Transactions []T `json:"transactions"`
}
