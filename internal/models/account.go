package models

import "time"

// Account represents a registered dashboard account row.
// Accounts are created by the registration flow; this service only reads them.
type Account struct {
	AccountID string    `db:"account_id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// ChatLink represents the one-to-one link between a chat identity and an
// account. Both columns carry unique constraints so the link race resolves
// in the database.
type ChatLink struct {
	ChatID    int64     `db:"chat_id"`
	AccountID string    `db:"account_id"`
	CreatedAt time.Time `db:"created_at"`
}
