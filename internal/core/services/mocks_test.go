package services_test

import (
	"context"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountReader ---

type MockAccountRepository struct {
	mock.Mock
	FindAccountByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	FindAccountByIDFn    func(ctx context.Context, accountID string) (*domain.Account, error)
}

func (m *MockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindAccountByEmailFn != nil {
		return m.FindAccountByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if m.FindAccountByIDFn != nil {
		return m.FindAccountByIDFn(ctx, accountID)
	}
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

// --- Mock ChatLinkRepository ---

type MockChatLinkRepository struct {
	mock.Mock
	FindLinkByChatIDFn    func(ctx context.Context, chatID int64) (*domain.ChatLink, error)
	FindLinkByAccountIDFn func(ctx context.Context, accountID string) (*domain.ChatLink, error)
	SaveLinkFn            func(ctx context.Context, link domain.ChatLink) error
	SavedLinks            []domain.ChatLink
}

func (m *MockChatLinkRepository) FindLinkByChatID(ctx context.Context, chatID int64) (*domain.ChatLink, error) {
	if m.FindLinkByChatIDFn != nil {
		return m.FindLinkByChatIDFn(ctx, chatID)
	}
	args := m.Called(ctx, chatID)
	var link *domain.ChatLink
	if args.Get(0) != nil {
		link = args.Get(0).(*domain.ChatLink)
	}
	return link, args.Error(1)
}

func (m *MockChatLinkRepository) FindLinkByAccountID(ctx context.Context, accountID string) (*domain.ChatLink, error) {
	if m.FindLinkByAccountIDFn != nil {
		return m.FindLinkByAccountIDFn(ctx, accountID)
	}
	args := m.Called(ctx, accountID)
	var link *domain.ChatLink
	if args.Get(0) != nil {
		link = args.Get(0).(*domain.ChatLink)
	}
	return link, args.Error(1)
}

func (m *MockChatLinkRepository) SaveLink(ctx context.Context, link domain.ChatLink) error {
	m.SavedLinks = append(m.SavedLinks, link)
	if m.SaveLinkFn != nil {
		return m.SaveLinkFn(ctx, link)
	}
	args := m.Called(ctx, link)
	return args.Error(0)
}

// --- Mock CategoryReader ---

type MockCategoryRepository struct {
	mock.Mock
	FindCategoryByNameFn   func(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error)
	FindDefaultCategoryFn  func(ctx context.Context, accountID string, categoryType domain.CategoryType) (*domain.Category, error)
	ListActiveCategoriesFn func(ctx context.Context, accountID string, categoryType domain.CategoryType) ([]domain.Category, error)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error) {
	if m.FindCategoryByNameFn != nil {
		return m.FindCategoryByNameFn(ctx, accountID, name, categoryType)
	}
	args := m.Called(ctx, accountID, name, categoryType)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindDefaultCategory(ctx context.Context, accountID string, categoryType domain.CategoryType) (*domain.Category, error) {
	if m.FindDefaultCategoryFn != nil {
		return m.FindDefaultCategoryFn(ctx, accountID, categoryType)
	}
	args := m.Called(ctx, accountID, categoryType)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) ListActiveCategories(ctx context.Context, accountID string, categoryType domain.CategoryType) ([]domain.Category, error) {
	if m.ListActiveCategoriesFn != nil {
		return m.ListActiveCategoriesFn(ctx, accountID, categoryType)
	}
	args := m.Called(ctx, accountID, categoryType)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

// --- Mock CardReader ---

type MockCardRepository struct {
	mock.Mock
	FindCardByNameFn  func(ctx context.Context, accountID, name string) (*domain.Card, error)
	ListActiveCardsFn func(ctx context.Context, accountID string) ([]domain.Card, error)
}

func (m *MockCardRepository) FindCardByName(ctx context.Context, accountID, name string) (*domain.Card, error) {
	if m.FindCardByNameFn != nil {
		return m.FindCardByNameFn(ctx, accountID, name)
	}
	args := m.Called(ctx, accountID, name)
	var card *domain.Card
	if args.Get(0) != nil {
		card = args.Get(0).(*domain.Card)
	}
	return card, args.Error(1)
}

func (m *MockCardRepository) ListActiveCards(ctx context.Context, accountID string) ([]domain.Card, error) {
	if m.ListActiveCardsFn != nil {
		return m.ListActiveCardsFn(ctx, accountID)
	}
	args := m.Called(ctx, accountID)
	var cards []domain.Card
	if args.Get(0) != nil {
		cards = args.Get(0).([]domain.Card)
	}
	return cards, args.Error(1)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
	SaveTransactionFn      func(ctx context.Context, txn domain.Transaction) error
	SaveStockTransactionFn func(ctx context.Context, txn domain.StockTransaction) error
	SumExpensesFn          func(ctx context.Context, accountID string, from, to *time.Time) (decimal.Decimal, error)
	ListExpensesFn         func(ctx context.Context, accountID string, from, to *time.Time) ([]domain.ExpenseRecord, error)

	SavedTransactions      []domain.Transaction
	SavedStockTransactions []domain.StockTransaction
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m.SavedTransactions = append(m.SavedTransactions, txn)
	if m.SaveTransactionFn != nil {
		return m.SaveTransactionFn(ctx, txn)
	}
	return nil
}

func (m *MockLedgerRepository) SaveStockTransaction(ctx context.Context, txn domain.StockTransaction) error {
	m.SavedStockTransactions = append(m.SavedStockTransactions, txn)
	if m.SaveStockTransactionFn != nil {
		return m.SaveStockTransactionFn(ctx, txn)
	}
	return nil
}

func (m *MockLedgerRepository) SumExpenses(ctx context.Context, accountID string, from, to *time.Time) (decimal.Decimal, error) {
	if m.SumExpensesFn != nil {
		return m.SumExpensesFn(ctx, accountID, from, to)
	}
	return decimal.Zero, nil
}

func (m *MockLedgerRepository) ListExpenses(ctx context.Context, accountID string, from, to *time.Time) ([]domain.ExpenseRecord, error) {
	if m.ListExpensesFn != nil {
		return m.ListExpensesFn(ctx, accountID, from, to)
	}
	return nil, nil
}

// --- Mock HoldingReader ---

type MockHoldingRepository struct {
	mock.Mock
	ListHoldingsFn func(ctx context.Context, accountID string) ([]domain.Holding, error)
}

func (m *MockHoldingRepository) ListHoldings(ctx context.Context, accountID string) ([]domain.Holding, error) {
	if m.ListHoldingsFn != nil {
		return m.ListHoldingsFn(ctx, accountID)
	}
	return nil, nil
}

// --- Mock BudgetRepository ---

type MockBudgetRepository struct {
	mock.Mock
	FindBudgetFn   func(ctx context.Context, accountID, monthYear string) (*domain.Budget, error)
	UpsertBudgetFn func(ctx context.Context, budget domain.Budget) error
	SavedBudgets   []domain.Budget
}

func (m *MockBudgetRepository) FindBudget(ctx context.Context, accountID, monthYear string) (*domain.Budget, error) {
	if m.FindBudgetFn != nil {
		return m.FindBudgetFn(ctx, accountID, monthYear)
	}
	args := m.Called(ctx, accountID, monthYear)
	var budget *domain.Budget
	if args.Get(0) != nil {
		budget = args.Get(0).(*domain.Budget)
	}
	return budget, args.Error(1)
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	m.SavedBudgets = append(m.SavedBudgets, budget)
	if m.UpsertBudgetFn != nil {
		return m.UpsertBudgetFn(ctx, budget)
	}
	return nil
}
