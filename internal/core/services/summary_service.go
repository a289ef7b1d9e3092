package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	portsrepo "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/repositories"
	portssvc "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/services"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/utils/finmath"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type summaryService struct {
	ledgerRepo  portsrepo.LedgerReader
	holdingRepo portsrepo.HoldingReader
	budgetRepo  portsrepo.BudgetReader
}

// NewSummaryService creates the aggregation engine behind /balance and the
// dashboard overview.
func NewSummaryService(ledgerRepo portsrepo.LedgerReader, holdingRepo portsrepo.HoldingReader, budgetRepo portsrepo.BudgetReader) portssvc.SummarySvc {
	return &summaryService{
		ledgerRepo:  ledgerRepo,
		holdingRepo: holdingRepo,
		budgetRepo:  budgetRepo,
	}
}

var _ portssvc.SummarySvc = (*summaryService)(nil)

// windowBounds maps a month key onto the optional date bounds the ledger
// reader takes. domain.MonthAll means no bounds at all.
func windowBounds(monthKey string) (*time.Time, *time.Time, error) {
	if monthKey == domain.MonthAll {
		return nil, nil, nil
	}
	start, end, err := finmath.MonthWindow(monthKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	return &start, &end, nil
}

func (s *summaryService) MonthlySummary(ctx context.Context, accountID, monthKey string) (*domain.FinancialSummary, error) {
	from, to, err := windowBounds(monthKey)
	if err != nil {
		return nil, err
	}

	var (
		windowExpenses   decimal.Decimal
		lifetimeExpenses decimal.Decimal
		holdings         []domain.Holding
		budget           decimal.Decimal
	)

	// The four reads are independent; fan them out.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		windowExpenses, err = s.ledgerRepo.SumExpenses(gctx, accountID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		lifetimeExpenses, err = s.ledgerRepo.SumExpenses(gctx, accountID, nil, nil)
		return err
	})
	g.Go(func() error {
		var err error
		holdings, err = s.holdingRepo.ListHoldings(gctx, accountID)
		return err
	})
	g.Go(func() error {
		if monthKey == domain.MonthAll {
			return nil
		}
		row, err := s.budgetRepo.FindBudget(gctx, accountID, monthKey)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil // no budget set for this month
			}
			return err
		}
		budget = row.Amount
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	portfolioValue := finmath.HoldingsValue(holdings)
	return &domain.FinancialSummary{
		MonthKey:         monthKey,
		TotalExpenses:    windowExpenses,
		LifetimeExpenses: lifetimeExpenses,
		PortfolioValue:   portfolioValue,
		Budget:           budget,
		NetWorth:         portfolioValue.Sub(lifetimeExpenses),
	}, nil
}

func (s *summaryService) CategoryBreakdown(ctx context.Context, accountID, monthKey string) ([]domain.CategoryBreakdown, error) {
	records, err := s.ListExpenses(ctx, accountID, monthKey)
	if err != nil {
		return nil, err
	}
	return finmath.BreakdownByCategory(records), nil
}

func (s *summaryService) ListExpenses(ctx context.Context, accountID, monthKey string) ([]domain.ExpenseRecord, error) {
	from, to, err := windowBounds(monthKey)
	if err != nil {
		return nil, err
	}
	records, err := s.ledgerRepo.ListExpenses(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return records, nil
}

func (s *summaryService) Holdings(ctx context.Context, accountID string) ([]domain.Holding, decimal.Decimal, error) {
	holdings, err := s.holdingRepo.ListHoldings(ctx, accountID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to list holdings: %w", err)
	}
	return holdings, finmath.HoldingsValue(holdings), nil
}
