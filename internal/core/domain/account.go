package domain

import "time"

// Account is a registered user of the tracker. Accounts are created by the
// registration flow outside this service; this core only reads them.
type Account struct {
	AccountID string    `json:"accountID"` // Primary Key (UUID)
	Email     string    `json:"email"`     // Unique, matched case-sensitively
	CreatedAt time.Time `json:"createdAt"`
}

// ChatLink associates one external chat identity with one Account.
// Both columns are unique: one chat per account, one account per chat.
// Links are created by /link and never updated.
type ChatLink struct {
	ChatID    int64     `json:"chatID"`
	AccountID string    `json:"accountID"`
	CreatedAt time.Time `json:"createdAt"`
}
