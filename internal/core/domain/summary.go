package domain

import "github.com/shopspring/decimal"

// MonthAll disables the month window on summary queries.
const MonthAll = "all"

// FinancialSummary is the derived figure set behind both the chat /balance
// reply and the dashboard overview.
//
// TotalExpenses is scoped to the requested month window. LifetimeExpenses is
// always the all-time expense sum, and net worth is always computed against
// it, regardless of the window shown alongside.
type FinancialSummary struct {
	MonthKey         string          `json:"monthKey"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	LifetimeExpenses decimal.Decimal `json:"lifetimeExpenses"`
	PortfolioValue   decimal.Decimal `json:"portfolioValue"`
	Budget           decimal.Decimal `json:"budget"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// BudgetState is the memoryless three-tier classification of spend against
// budget. It is recomputed from current totals on every call, never stored.
type BudgetState string

const (
	BudgetGood    BudgetState = "GOOD"
	BudgetWarning BudgetState = "WARNING"
	BudgetOver    BudgetState = "OVER"
)

// CategoryBreakdown is one slice of the per-category expense breakdown.
type CategoryBreakdown struct {
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"` // Share of the overall total, 0-100
}
