package repositories

import (
	"context"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerWriter defines the append-only write operations for ledger entries.
// There is no update path; deletion is a dashboard operation outside this
// service.
type LedgerWriter interface {
	// SaveTransaction inserts one immutable expense row.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveStockTransaction inserts one immutable security-trade row.
	SaveStockTransaction(ctx context.Context, txn domain.StockTransaction) error
}

// LedgerReader defines the read operations the aggregates are computed from.
type LedgerReader interface {
	// SumExpenses totals transaction amounts for the account. A nil from/to
	// means no date bound on that side; both nil sums the whole ledger.
	SumExpenses(ctx context.Context, accountID string, from, to *time.Time) (decimal.Decimal, error)

	// ListExpenses returns the account's expense rows joined with category
	// and card display fields, newest first, bounded by the same optional
	// window as SumExpenses.
	ListExpenses(ctx context.Context, accountID string, from, to *time.Time) ([]domain.ExpenseRecord, error)
}

// LedgerRepositoryFacade combines ledger reads and writes.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// HoldingReader defines read operations for holdings. Holdings are
// maintained by an external process; this core only values them.
type HoldingReader interface {
	// ListHoldings returns the account's current positions.
	ListHoldings(ctx context.Context, accountID string) ([]domain.Holding, error)
}

// BudgetReader defines read operations for budgets.
type BudgetReader interface {
	// FindBudget retrieves the budget row for (account, monthYear), or
	// apperrors.ErrNotFound when none is set.
	FindBudget(ctx context.Context, accountID, monthYear string) (*domain.Budget, error)
}

// BudgetWriter defines write operations for budgets.
type BudgetWriter interface {
	// UpsertBudget inserts or replaces the budget for (account, monthYear).
	UpsertBudget(ctx context.Context, budget domain.Budget) error
}

// BudgetRepositoryFacade combines budget reads and writes.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
