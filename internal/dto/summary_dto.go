package dto

import (
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/utils/finmath"
	"github.com/shopspring/decimal"
)

// BudgetStatusResponse describes one month's budget against its spend.
type BudgetStatusResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	FillRatio float64         `json:"fillRatio"`
	Status    string          `json:"status"`
}

// FinancialSummaryResponse is the dashboard headline figures for one month.
type FinancialSummaryResponse struct {
	Month            string                `json:"month"`
	TotalExpenses    decimal.Decimal       `json:"totalExpenses"`
	LifetimeExpenses decimal.Decimal       `json:"lifetimeExpenses"`
	PortfolioValue   decimal.Decimal       `json:"portfolioValue"`
	NetWorth         decimal.Decimal       `json:"netWorth"`
	Budget           *BudgetStatusResponse `json:"budget,omitempty"`
}

// CategoryBreakdownResponse is one slice of the per-category spend chart.
type CategoryBreakdownResponse struct {
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ToFinancialSummaryResponse converts a domain summary to its response shape.
// The budget block is omitted when no budget exists for the month.
func ToFinancialSummaryResponse(summary *domain.FinancialSummary) FinancialSummaryResponse {
	response := FinancialSummaryResponse{
		Month:            summary.MonthKey,
		TotalExpenses:    summary.TotalExpenses,
		LifetimeExpenses: summary.LifetimeExpenses,
		PortfolioValue:   summary.PortfolioValue,
		NetWorth:         summary.NetWorth,
	}
	if summary.Budget.IsPositive() {
		response.Budget = &BudgetStatusResponse{
			Amount:    summary.Budget,
			Spent:     summary.TotalExpenses,
			Remaining: summary.Budget.Sub(summary.TotalExpenses),
			FillRatio: finmath.BudgetFillRatio(summary.TotalExpenses, summary.Budget),
			Status:    string(finmath.BudgetStatus(summary.TotalExpenses, summary.Budget)),
		}
	}
	return response
}

// ToCategoryBreakdownResponse converts domain breakdown rows to their response shape.
func ToCategoryBreakdownResponse(rows []domain.CategoryBreakdown) []CategoryBreakdownResponse {
	response := make([]CategoryBreakdownResponse, len(rows))
	for i, row := range rows {
		response[i] = CategoryBreakdownResponse{
			Name:       row.Name,
			Color:      row.Color,
			Total:      row.Total,
			Count:      row.Count,
			Percentage: row.Percentage,
		}
	}
	return response
}
