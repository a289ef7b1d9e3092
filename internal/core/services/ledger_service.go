package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	portsrepo "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/repositories"
	portssvc "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	catalog    portssvc.CatalogSvc
	ledgerRepo portsrepo.LedgerWriter
	budgetRepo portsrepo.BudgetWriter
	now        func() time.Time
}

// NewLedgerService creates the append-only ledger writer.
func NewLedgerService(catalog portssvc.CatalogSvc, ledgerRepo portsrepo.LedgerWriter, budgetRepo portsrepo.BudgetWriter) portssvc.LedgerSvc {
	return &ledgerService{
		catalog:    catalog,
		ledgerRepo: ledgerRepo,
		budgetRepo: budgetRepo,
		now:        time.Now,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// calendarDate truncates the server clock to a date-only value in UTC.
func (s *ledgerService) calendarDate() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *ledgerService) RecordExpense(ctx context.Context, accountID string, amount decimal.Decimal, description, categoryName, cardName string) (*domain.Transaction, error) {
	// The dispatcher validates upstream; re-assert the contract here.
	if !amount.IsPositive() {
		return nil, fmt.Errorf("expense amount must be positive: %w", apperrors.ErrValidation)
	}

	// Resolve both names before touching the ledger; the first failure
	// aborts the whole operation with nothing written.
	category, err := s.catalog.ResolveCategory(ctx, accountID, categoryName, domain.CategoryExpense)
	if err != nil {
		return nil, err
	}
	card, err := s.catalog.ResolveCard(ctx, accountID, cardName)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       accountID,
		Amount:          amount,
		Description:     description,
		CategoryID:      category.CategoryID,
		CardID:          card.CardID,
		TransactionDate: s.calendarDate(),
		CreatedAt:       s.now().UTC(),
	}
	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return &txn, nil
}

func (s *ledgerService) RecordStockTrade(ctx context.Context, accountID, symbol string, shares, price decimal.Decimal, tradeType domain.TradeType) (*domain.StockTransaction, error) {
	if !shares.IsPositive() {
		return nil, fmt.Errorf("share count must be positive: %w", apperrors.ErrValidation)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("price per share must be positive: %w", apperrors.ErrValidation)
	}
	if tradeType != domain.TradeBuy && tradeType != domain.TradeSell {
		return nil, fmt.Errorf("trade type must be buy or sell: %w", apperrors.ErrValidation)
	}

	category, err := s.catalog.DefaultStockCategory(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txn := domain.StockTransaction{
		TransactionID:   uuid.NewString(),
		AccountID:       accountID,
		Symbol:          strings.ToUpper(symbol),
		Shares:          shares,
		PricePerShare:   price,
		TotalAmount:     shares.Mul(price),
		TradeType:       tradeType,
		CategoryID:      category.CategoryID,
		TransactionDate: s.calendarDate(),
		CreatedAt:       s.now().UTC(),
	}
	if err := s.ledgerRepo.SaveStockTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save stock trade: %w", err)
	}
	return &txn, nil
}

func (s *ledgerService) SetBudget(ctx context.Context, accountID, categoryName string, amount decimal.Decimal, monthYear string) (*domain.Budget, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("budget amount must be positive: %w", apperrors.ErrValidation)
	}

	category, err := s.catalog.ResolveCategory(ctx, accountID, categoryName, domain.CategoryExpense)
	if err != nil {
		return nil, err
	}

	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		AccountID:  accountID,
		CategoryID: category.CategoryID,
		Amount:     amount,
		MonthYear:  monthYear,
	}
	if err := s.budgetRepo.UpsertBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}
	return &budget, nil
}
