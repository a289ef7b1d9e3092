package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one cash expense ledger entry. Rows are append-only;
// deletion happens from the dashboard, outside this core.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	Amount          decimal.Decimal `json:"amount"` // Positive
	Description     string          `json:"description"`
	CategoryID      string          `json:"categoryID"` // Expense-typed category
	CardID          string          `json:"cardID"`
	TransactionDate time.Time       `json:"transactionDate"` // Calendar date, no time component
	CreatedAt       time.Time       `json:"createdAt"`
}

// ExpenseRecord is a Transaction joined with its category and card display
// fields, the shape the dashboard lists and the breakdown groups over.
type ExpenseRecord struct {
	Transaction
	CategoryName  string `json:"categoryName"`
	CategoryColor string `json:"categoryColor"`
	CardName      string `json:"cardName"`
}

// TradeType is the direction of a security trade.
type TradeType string

const (
	TradeBuy  TradeType = "buy"
	TradeSell TradeType = "sell"
)

// ParseTradeType maps user input onto a TradeType. Case-insensitive.
func ParseTradeType(s string) (TradeType, bool) {
	switch TradeType(strings.ToLower(s)) {
	case TradeBuy:
		return TradeBuy, true
	case TradeSell:
		return TradeSell, true
	}
	return "", false
}

// StockTransaction is one security-trade ledger entry. Append-only, like
// Transaction. TotalAmount is always Shares × PricePerShare, never supplied
// independently.
type StockTransaction struct {
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	Symbol          string          `json:"symbol"` // Stored uppercased
	Shares          decimal.Decimal `json:"shares"` // Positive
	PricePerShare   decimal.Decimal `json:"pricePerShare"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	TradeType       TradeType       `json:"tradeType"`
	CategoryID      string          `json:"categoryID"` // Stock-typed category
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Holding is an account's aggregate position in one symbol. Maintained by an
// external process; this core only reads it for valuation. CurrentPrice is
// nil when no quote has been stored yet.
type Holding struct {
	AccountID    string           `json:"accountID"`
	Symbol       string           `json:"symbol"`
	Shares       decimal.Decimal  `json:"shares"`
	AveragePrice decimal.Decimal  `json:"averagePrice"`
	TotalCost    decimal.Decimal  `json:"totalCost"`
	CurrentPrice *decimal.Decimal `json:"currentPrice,omitempty"`
}

// Budget is a per-account, per-month spending limit tied to a category.
// Upserted per (account, month).
type Budget struct {
	BudgetID   string          `json:"budgetID"`
	AccountID  string          `json:"accountID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	MonthYear  string          `json:"monthYear"` // YYYY-MM
}
