package finmath

import (
	"fmt"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// HoldingValue prices one holding: shares × current price, falling back to
// the stored average cost when no quote is present. This is the single
// authoritative fallback rule; every portfolio-value figure in the system
// goes through it.
func HoldingValue(h domain.Holding) decimal.Decimal {
	price := h.AveragePrice
	if h.CurrentPrice != nil {
		price = *h.CurrentPrice
	}
	return h.Shares.Mul(price)
}

// HoldingsValue sums HoldingValue over a set of holdings.
func HoldingsValue(holdings []domain.Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(HoldingValue(h))
	}
	return total
}

// BudgetStatus classifies spend against budget: OVER above 100%, WARNING
// above 80%, GOOD otherwise. A non-positive budget is always GOOD.
func BudgetStatus(spent, budget decimal.Decimal) domain.BudgetState {
	if budget.LessThanOrEqual(decimal.Zero) {
		return domain.BudgetGood
	}
	pct := spent.Div(budget).Mul(oneHundred)
	switch {
	case pct.GreaterThan(oneHundred):
		return domain.BudgetOver
	case pct.GreaterThan(decimal.NewFromInt(80)):
		return domain.BudgetWarning
	default:
		return domain.BudgetGood
	}
}

// BudgetFillRatio is the progress-bar fill for a budget card, capped at 1.
func BudgetFillRatio(spent, budget decimal.Decimal) float64 {
	if budget.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	ratio := spent.Div(budget)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return 1
	}
	f, _ := ratio.Float64()
	return f
}

// BreakdownByCategory groups expense records by category name, summing
// amounts and counting entries, and assigns each group its percentage share
// of the overall total. Groups come back ordered by descending total.
func BreakdownByCategory(records []domain.ExpenseRecord) []domain.CategoryBreakdown {
	byName := map[string]*domain.CategoryBreakdown{}
	var order []string
	overall := decimal.Zero

	for _, rec := range records {
		entry, ok := byName[rec.CategoryName]
		if !ok {
			entry = &domain.CategoryBreakdown{
				Name:  rec.CategoryName,
				Color: rec.CategoryColor,
				Total: decimal.Zero,
			}
			byName[rec.CategoryName] = entry
			order = append(order, rec.CategoryName)
		}
		entry.Total = entry.Total.Add(rec.Amount)
		entry.Count++
		overall = overall.Add(rec.Amount)
	}

	result := make([]domain.CategoryBreakdown, 0, len(order))
	for _, name := range order {
		entry := byName[name]
		if overall.IsPositive() {
			entry.Percentage = entry.Total.Div(overall).Mul(oneHundred)
		}
		result = append(result, *entry)
	}

	// Largest slice first, stable for equal totals.
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].Total.GreaterThan(result[j-1].Total); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result
}

// MonthWindow returns the inclusive [first day, last day] range for a
// YYYY-MM key. The end is taken from the calendar, so 28/29/30/31-day months
// and leap years all come out right.
func MonthWindow(monthKey string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month key %q: %w", monthKey, err)
	}
	end := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}
