package services

import (
	"context"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc appends ledger entries with their derived fields computed. All
// writes are strictly append-only; either the whole operation lands or
// nothing is written.
type LedgerSvc interface {
	// RecordExpense resolves the category (expense-typed) and card names and
	// inserts one expense row dated with the server's calendar date. The
	// first unresolved name aborts the operation before any write.
	RecordExpense(ctx context.Context, accountID string, amount decimal.Decimal, description, categoryName, cardName string) (*domain.Transaction, error)

	// RecordStockTrade inserts one security-trade row under the account's
	// default stock category, with the symbol uppercased and
	// total = shares × price.
	RecordStockTrade(ctx context.Context, accountID, symbol string, shares, price decimal.Decimal, tradeType domain.TradeType) (*domain.StockTransaction, error)

	// SetBudget upserts the (account, month) budget against a resolved
	// expense category.
	SetBudget(ctx context.Context, accountID, categoryName string, amount decimal.Decimal, monthYear string) (*domain.Budget, error)
}
