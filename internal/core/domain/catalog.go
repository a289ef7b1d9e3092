package domain

import "time"

// CategoryType distinguishes expense categories from stock categories.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryStock   CategoryType = "stock"
)

// Category is a named grouping for ledger entries, owned by one account.
// Categories are created and edited from the dashboard; this core only
// resolves them by name among the active rows.
type Category struct {
	CategoryID string       `json:"categoryID"`
	AccountID  string       `json:"accountID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Color      string       `json:"color"`
	IsActive   bool         `json:"isActive"`
	ParentID   *string      `json:"parentID,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// Card is a named payment method used on expense entries. Read-only here,
// same ownership rules as Category.
type Card struct {
	CardID    string    `json:"cardID"`
	AccountID string    `json:"accountID"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
