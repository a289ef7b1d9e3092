package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// catalogFixture builds a real catalog service over mock readers with one
// expense category, one card and one stock category.
func catalogFixture() (*MockCategoryRepository, *MockCardRepository) {
	categoryRepo := &MockCategoryRepository{
		FindCategoryByNameFn: func(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error) {
			if name == "Food & Dining" && categoryType == domain.CategoryExpense {
				return &domain.Category{CategoryID: "cat-food", Name: name, Type: categoryType}, nil
			}
			return nil, apperrors.ErrNotFound
		},
		FindDefaultCategoryFn: func(ctx context.Context, accountID string, categoryType domain.CategoryType) (*domain.Category, error) {
			if categoryType == domain.CategoryStock {
				return &domain.Category{CategoryID: "cat-stock", Type: categoryType}, nil
			}
			return nil, apperrors.ErrNotFound
		},
	}
	cardRepo := &MockCardRepository{
		FindCardByNameFn: func(ctx context.Context, accountID, name string) (*domain.Card, error) {
			if name == "Main Card" {
				return &domain.Card{CardID: "card-main", Name: name}, nil
			}
			return nil, apperrors.ErrNotFound
		},
	}
	return categoryRepo, cardRepo
}

func TestRecordExpense_Success(t *testing.T) {
	categoryRepo, cardRepo := catalogFixture()
	catalog := services.NewCatalogService(categoryRepo, cardRepo)
	ledgerRepo := &MockLedgerRepository{}
	svc := services.NewLedgerService(catalog, ledgerRepo, &MockBudgetRepository{})

	txn, err := svc.RecordExpense(context.Background(), testAccountID, decimal.RequireFromString("25.50"), "Coffee", "Food & Dining", "Main Card")
	assert.NoError(t, err)
	assert.Len(t, ledgerRepo.SavedTransactions, 1)

	saved := ledgerRepo.SavedTransactions[0]
	assert.True(t, saved.Amount.Equal(decimal.RequireFromString("25.50")), "amount must be exact, got %s", saved.Amount)
	assert.Equal(t, "cat-food", saved.CategoryID)
	assert.Equal(t, "card-main", saved.CardID)
	assert.Equal(t, "Coffee", saved.Description)
	assert.NotEmpty(t, saved.TransactionID)
	assert.Equal(t, txn.TransactionID, saved.TransactionID)

	// Calendar date only, no time-of-day component.
	assert.Equal(t, 0, saved.TransactionDate.Hour())
	assert.Equal(t, 0, saved.TransactionDate.Minute())
	y, m, d := time.Now().UTC().Date()
	assert.Equal(t, time.Date(y, m, d, 0, 0, 0, 0, time.UTC), saved.TransactionDate)
}

func TestRecordExpense_NonPositiveAmountRejectedBeforeResolution(t *testing.T) {
	categoryCalled := false
	categoryRepo := &MockCategoryRepository{
		FindCategoryByNameFn: func(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error) {
			categoryCalled = true
			return nil, apperrors.ErrNotFound
		},
	}
	catalog := services.NewCatalogService(categoryRepo, &MockCardRepository{})
	ledgerRepo := &MockLedgerRepository{}
	svc := services.NewLedgerService(catalog, ledgerRepo, &MockBudgetRepository{})

	_, err := svc.RecordExpense(context.Background(), testAccountID, decimal.NewFromInt(-5), "Coffee", "Food & Dining", "Main Card")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.False(t, categoryCalled, "no resolver call may happen for an invalid amount")
	assert.Empty(t, ledgerRepo.SavedTransactions)
}

func TestRecordExpense_UnresolvedCategoryAbortsBeforeWrite(t *testing.T) {
	categoryRepo, cardRepo := catalogFixture()
	catalog := services.NewCatalogService(categoryRepo, cardRepo)
	ledgerRepo := &MockLedgerRepository{}
	svc := services.NewLedgerService(catalog, ledgerRepo, &MockBudgetRepository{})

	_, err := svc.RecordExpense(context.Background(), testAccountID, decimal.NewFromInt(10), "Coffee", "Nope", "Main Card")
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, apperrors.NotFoundCategory, nf.Kind)
	assert.Equal(t, "Nope", nf.Name, "the first unresolved name must surface")
	assert.Empty(t, ledgerRepo.SavedTransactions, "no partial write")
}

func TestRecordExpense_UnresolvedCardAbortsBeforeWrite(t *testing.T) {
	categoryRepo, cardRepo := catalogFixture()
	catalog := services.NewCatalogService(categoryRepo, cardRepo)
	ledgerRepo := &MockLedgerRepository{}
	svc := services.NewLedgerService(catalog, ledgerRepo, &MockBudgetRepository{})

	_, err := svc.RecordExpense(context.Background(), testAccountID, decimal.NewFromInt(10), "Coffee", "Food & Dining", "Missing Card")
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, apperrors.NotFoundCard, nf.Kind)
	assert.Empty(t, ledgerRepo.SavedTransactions)
}

func TestRecordStockTrade_Success(t *testing.T) {
	categoryRepo, cardRepo := catalogFixture()
	catalog := services.NewCatalogService(categoryRepo, cardRepo)
	ledgerRepo := &MockLedgerRepository{}
	svc := services.NewLedgerService(catalog, ledgerRepo, &MockBudgetRepository{})

	txn, err := svc.RecordStockTrade(context.Background(), testAccountID, "aapl", decimal.NewFromInt(10), decimal.RequireFromString("150.25"), domain.TradeBuy)
	assert.NoError(t, err)
	assert.Equal(t, "AAPL", txn.Symbol, "symbol must be uppercased before storage")
	assert.True(t, txn.TotalAmount.Equal(decimal.RequireFromString("1502.5")), "total must be shares times price, got %s", txn.TotalAmount)
	assert.Equal(t, "cat-stock", txn.CategoryID)
	assert.Len(t, ledgerRepo.SavedStockTransactions, 1)
}

func TestRecordStockTrade_Validation(t *testing.T) {
	categoryRepo, cardRepo := catalogFixture()
	catalog := services.NewCatalogService(categoryRepo, cardRepo)
	ledgerRepo := &MockLedgerRepository{}
	svc := services.NewLedgerService(catalog, ledgerRepo, &MockBudgetRepository{})

	tests := []struct {
		name      string
		shares    decimal.Decimal
		price     decimal.Decimal
		tradeType domain.TradeType
	}{
		{name: "zero shares", shares: decimal.Zero, price: decimal.NewFromInt(1), tradeType: domain.TradeBuy},
		{name: "negative price", shares: decimal.NewFromInt(1), price: decimal.NewFromInt(-1), tradeType: domain.TradeSell},
		{name: "bad type", shares: decimal.NewFromInt(1), price: decimal.NewFromInt(1), tradeType: domain.TradeType("hold")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordStockTrade(context.Background(), testAccountID, "AAPL", tt.shares, tt.price, tt.tradeType)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
	assert.Empty(t, ledgerRepo.SavedStockTransactions)
}

func TestRecordStockTrade_NoStockCategoryAborts(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		FindDefaultCategoryFn: func(ctx context.Context, accountID string, categoryType domain.CategoryType) (*domain.Category, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	catalog := services.NewCatalogService(categoryRepo, &MockCardRepository{})
	ledgerRepo := &MockLedgerRepository{}
	svc := services.NewLedgerService(catalog, ledgerRepo, &MockBudgetRepository{})

	_, err := svc.RecordStockTrade(context.Background(), testAccountID, "AAPL", decimal.NewFromInt(1), decimal.NewFromInt(1), domain.TradeBuy)
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, apperrors.NotFoundStockCategory, nf.Kind)
	assert.Empty(t, ledgerRepo.SavedStockTransactions)
}

func TestSetBudget_UpsertsResolvedCategory(t *testing.T) {
	categoryRepo, cardRepo := catalogFixture()
	catalog := services.NewCatalogService(categoryRepo, cardRepo)
	budgetRepo := &MockBudgetRepository{}
	svc := services.NewLedgerService(catalog, &MockLedgerRepository{}, budgetRepo)

	budget, err := svc.SetBudget(context.Background(), testAccountID, "Food & Dining", decimal.NewFromInt(500), "2024-12")
	assert.NoError(t, err)
	assert.Equal(t, "cat-food", budget.CategoryID)
	assert.Equal(t, "2024-12", budget.MonthYear)
	assert.Len(t, budgetRepo.SavedBudgets, 1)
}

func TestSetBudget_UnresolvedCategoryAborts(t *testing.T) {
	categoryRepo, cardRepo := catalogFixture()
	catalog := services.NewCatalogService(categoryRepo, cardRepo)
	budgetRepo := &MockBudgetRepository{}
	svc := services.NewLedgerService(catalog, &MockLedgerRepository{}, budgetRepo)

	_, err := svc.SetBudget(context.Background(), testAccountID, "Nope", decimal.NewFromInt(500), "2024-12")
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Empty(t, budgetRepo.SavedBudgets)
}
