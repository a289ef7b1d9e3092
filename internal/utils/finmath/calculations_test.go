package finmath

import (
	"testing"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestHoldingValue_FallbackRule(t *testing.T) {
	tests := []struct {
		name    string
		holding domain.Holding
		want    string
	}{
		{
			name: "no quote falls back to average price",
			holding: domain.Holding{
				Shares:       decimal.NewFromInt(10),
				AveragePrice: decimal.NewFromInt(100),
				CurrentPrice: nil,
			},
			want: "1000",
		},
		{
			name: "quote present wins over average price",
			holding: domain.Holding{
				Shares:       decimal.NewFromInt(10),
				AveragePrice: decimal.NewFromInt(100),
				CurrentPrice: decimalPtr(decimal.NewFromInt(120)),
			},
			want: "1200",
		},
		{
			name: "fractional shares",
			holding: domain.Holding{
				Shares:       decimal.RequireFromString("2.5"),
				AveragePrice: decimal.NewFromInt(40),
			},
			want: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HoldingValue(tt.holding)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestHoldingsValue_SumsAcrossPositions(t *testing.T) {
	holdings := []domain.Holding{
		{Shares: decimal.NewFromInt(10), AveragePrice: decimal.NewFromInt(100)},
		{Shares: decimal.NewFromInt(10), AveragePrice: decimal.NewFromInt(100), CurrentPrice: decimalPtr(decimal.NewFromInt(120))},
	}
	assert.True(t, HoldingsValue(holdings).Equal(decimal.NewFromInt(2200)))
	assert.True(t, HoldingsValue(nil).Equal(decimal.Zero))
}

func TestBudgetStatus_Thresholds(t *testing.T) {
	tests := []struct {
		spent  int64
		budget int64
		want   domain.BudgetState
	}{
		{spent: 50, budget: 100, want: domain.BudgetGood},
		{spent: 80, budget: 100, want: domain.BudgetGood},
		{spent: 81, budget: 100, want: domain.BudgetWarning},
		{spent: 100, budget: 100, want: domain.BudgetWarning},
		{spent: 101, budget: 100, want: domain.BudgetOver},
		{spent: 0, budget: 0, want: domain.BudgetGood},
	}

	for _, tt := range tests {
		got := BudgetStatus(decimal.NewFromInt(tt.spent), decimal.NewFromInt(tt.budget))
		assert.Equal(t, tt.want, got, "spent=%d budget=%d", tt.spent, tt.budget)
	}
}

func TestBudgetFillRatio_CapsAtOne(t *testing.T) {
	assert.InDelta(t, 0.5, BudgetFillRatio(decimal.NewFromInt(50), decimal.NewFromInt(100)), 1e-9)
	assert.InDelta(t, 1.0, BudgetFillRatio(decimal.NewFromInt(250), decimal.NewFromInt(100)), 1e-9)
	assert.InDelta(t, 0, BudgetFillRatio(decimal.NewFromInt(50), decimal.Zero), 1e-9)
}

func TestBreakdownByCategory(t *testing.T) {
	records := []domain.ExpenseRecord{
		{Transaction: domain.Transaction{Amount: decimal.NewFromInt(30)}, CategoryName: "Food & Dining", CategoryColor: "#ef4444"},
		{Transaction: domain.Transaction{Amount: decimal.NewFromInt(45)}, CategoryName: "Transport", CategoryColor: "#3b82f6"},
		{Transaction: domain.Transaction{Amount: decimal.NewFromInt(25)}, CategoryName: "Food & Dining", CategoryColor: "#ef4444"},
	}

	breakdown := BreakdownByCategory(records)
	assert.Len(t, breakdown, 2)

	// Largest total first.
	assert.Equal(t, "Food & Dining", breakdown[0].Name)
	assert.Equal(t, "#ef4444", breakdown[0].Color)
	assert.Equal(t, 2, breakdown[0].Count)
	assert.True(t, breakdown[0].Total.Equal(decimal.NewFromInt(55)))
	assert.True(t, breakdown[0].Percentage.Equal(decimal.NewFromInt(55)))

	assert.Equal(t, "Transport", breakdown[1].Name)
	assert.Equal(t, 1, breakdown[1].Count)
	assert.True(t, breakdown[1].Percentage.Equal(decimal.NewFromInt(45)))
}

func TestBreakdownByCategory_Empty(t *testing.T) {
	assert.Empty(t, BreakdownByCategory(nil))
}

func TestMonthWindow_CalendarEnds(t *testing.T) {
	tests := []struct {
		monthKey string
		wantEnd  time.Time
	}{
		{monthKey: "2024-02", wantEnd: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)}, // leap year
		{monthKey: "2023-02", wantEnd: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{monthKey: "2024-04", wantEnd: time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)},
		{monthKey: "2024-12", wantEnd: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		start, end, err := MonthWindow(tt.monthKey)
		assert.NoError(t, err, tt.monthKey)
		assert.Equal(t, 1, start.Day())
		assert.Equal(t, tt.wantEnd, end, tt.monthKey)
	}
}

func TestMonthWindow_RejectsBadKeys(t *testing.T) {
	for _, key := range []string{"2024-13", "202401", "all", ""} {
		_, _, err := MonthWindow(key)
		assert.Error(t, err, key)
	}
}
