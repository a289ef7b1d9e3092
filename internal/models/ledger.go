package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one expense ledger row. Rows are append-only.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	CategoryID      string          `db:"category_id"`
	CardID          string          `db:"card_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// StockTransaction represents one security-trade ledger row.
type StockTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	Symbol          string          `db:"symbol"`
	Shares          decimal.Decimal `db:"shares"`
	PricePerShare   decimal.Decimal `db:"price_per_share"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	TradeType       string          `db:"transaction_type"`
	CategoryID      string          `db:"category_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// Holding represents an aggregate position row, maintained externally.
// CurrentPrice is NULL until a quote has been stored.
type Holding struct {
	AccountID    string           `db:"account_id"`
	Symbol       string           `db:"symbol"`
	Shares       decimal.Decimal  `db:"shares"`
	AveragePrice decimal.Decimal  `db:"average_price"`
	TotalCost    decimal.Decimal  `db:"total_cost"`
	CurrentPrice *decimal.Decimal `db:"current_price"` // Nullable
}

// Budget represents the per-(account, month) spending limit row.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	AccountID  string          `db:"account_id"`
	CategoryID string          `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	MonthYear  string          `db:"month_year"`
}
