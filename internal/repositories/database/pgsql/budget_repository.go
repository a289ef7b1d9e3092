package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	portsrepo "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/repositories"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{pool: pool}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// UpsertBudget inserts or replaces the budget for (account, monthYear). The
// unique constraint over those two columns drives the conflict target.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (budget_id, account_id, category_id, amount, month_year)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id, month_year)
		DO UPDATE SET category_id = EXCLUDED.category_id, amount = EXCLUDED.amount;
	`
	_, err := r.pool.Exec(ctx, query,
		budget.BudgetID,
		budget.AccountID,
		budget.CategoryID,
		budget.Amount,
		budget.MonthYear,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert budget for %s %s: %w", budget.AccountID, budget.MonthYear, apperrors.Persistence(err))
	}
	return nil
}

// FindBudget retrieves the budget row for (account, monthYear).
func (r *PgxBudgetRepository) FindBudget(ctx context.Context, accountID, monthYear string) (*domain.Budget, error) {
	query := `
		SELECT budget_id, account_id, category_id, amount, month_year
		FROM budgets
		WHERE account_id = $1 AND month_year = $2;
	`
	var m models.Budget
	err := r.pool.QueryRow(ctx, query, accountID, monthYear).Scan(
		&m.BudgetID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.MonthYear,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget for %s %s: %w", accountID, monthYear, err)
	}

	return &domain.Budget{
		BudgetID:   m.BudgetID,
		AccountID:  m.AccountID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		MonthYear:  m.MonthYear,
	}, nil
}
