package models

import "time"

// Category represents a category row. Rows are owned and edited from the
// dashboard; this service resolves names among active rows only.
type Category struct {
	CategoryID string    `db:"category_id"`
	AccountID  string    `db:"account_id"`
	Name       string    `db:"name"`
	Type       string    `db:"category_type"`
	Color      string    `db:"color"`
	IsActive   bool      `db:"is_active"`
	ParentID   *string   `db:"parent_id"` // Nullable
	CreatedAt  time.Time `db:"created_at"`
}

// Card represents a payment card row, same ownership rules as Category.
type Card struct {
	CardID    string    `db:"card_id"`
	AccountID string    `db:"account_id"`
	Name      string    `db:"name"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}
