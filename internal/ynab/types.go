package ynab

// Wire types for the budgeting service's v1 REST API. Amounts are int64
// milliunits throughout (1 dollar = 1000 milliunits).

// Account is a budget account.
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance int64  `json:"balance"`
	Closed  bool   `json:"closed"`
	Deleted bool   `json:"deleted"`
}

// ScheduledTransaction is a recurring transaction definition as the service
// reports it. DateNext is empty on some one-time entries; DateFirst is the
// fallback anchor.
type ScheduledTransaction struct {
	ID                string `json:"id"`
	DateFirst         string `json:"date_first"`
	DateNext          string `json:"date_next"`
	Frequency         string `json:"frequency"`
	Amount            int64  `json:"amount"`
	AccountID         string `json:"account_id"`
	PayeeName         string `json:"payee_name"`
	TransferAccountID string `json:"transfer_account_id"`
	Deleted           bool   `json:"deleted"`
}

// Category is a budget category; Balance is the amount currently available.
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
	Hidden  bool   `json:"hidden"`
	Deleted bool   `json:"deleted"`
}

// CategoryGroup is a named group of categories.
type CategoryGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Deleted    bool       `json:"deleted"`
	Categories []Category `json:"categories"`
}

type accountResponse struct {
	Data struct {
		Account Account `json:"account"`
	} `json:"data"`
}

type accountsResponse struct {
	Data struct {
		Accounts []Account `json:"accounts"`
	} `json:"data"`
}

type scheduledTransactionsResponse struct {
	Data struct {
		ScheduledTransactions []ScheduledTransaction `json:"scheduled_transactions"`
	} `json:"data"`
}

type categoriesResponse struct {
	Data struct {
		CategoryGroups []CategoryGroup `json:"category_groups"`
	} `json:"data"`
}
