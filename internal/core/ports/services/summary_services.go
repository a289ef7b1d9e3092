package services

import (
	"context"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummarySvc computes the derived financial aggregates shared by the chat
// /balance command and the dashboard.
type SummarySvc interface {
	// MonthlySummary computes the summary for a YYYY-MM window, or for the
	// whole ledger when monthKey is domain.MonthAll. Net worth is always
	// portfolio value minus lifetime expenses, independent of the window.
	MonthlySummary(ctx context.Context, accountID, monthKey string) (*domain.FinancialSummary, error)

	// CategoryBreakdown groups the window's expenses by category.
	CategoryBreakdown(ctx context.Context, accountID, monthKey string) ([]domain.CategoryBreakdown, error)

	// ListExpenses returns the window's expense rows for the dashboard table.
	ListExpenses(ctx context.Context, accountID, monthKey string) ([]domain.ExpenseRecord, error)

	// Holdings returns the account's positions and their total value under
	// the current-price-else-average-cost rule.
	Holdings(ctx context.Context, accountID string) ([]domain.Holding, decimal.Decimal, error)
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Identity IdentitySvc
	Catalog  CatalogSvc
	Ledger   LedgerSvc
	Summary  SummarySvc
}
