package pgsql

import (
	"context"
	"fmt"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	portsrepo "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/repositories"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHoldingRepository struct {
	pool *pgxpool.Pool
}

// newPgxHoldingRepository creates a new repository for holdings. Holdings
// are written by an external aggregation process; only reads live here.
func newPgxHoldingRepository(pool *pgxpool.Pool) portsrepo.HoldingReader {
	return &PgxHoldingRepository{pool: pool}
}

var _ portsrepo.HoldingReader = (*PgxHoldingRepository)(nil)

// ListHoldings returns the account's current positions.
func (r *PgxHoldingRepository) ListHoldings(ctx context.Context, accountID string) ([]domain.Holding, error) {
	query := `
		SELECT account_id, symbol, shares, average_price, total_cost, current_price
		FROM holdings
		WHERE account_id = $1
		ORDER BY symbol;
	`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var holdings []domain.Holding
	for rows.Next() {
		var m models.Holding
		err := rows.Scan(
			&m.AccountID,
			&m.Symbol,
			&m.Shares,
			&m.AveragePrice,
			&m.TotalCost,
			&m.CurrentPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding row: %w", err)
		}
		holdings = append(holdings, domain.Holding{
			AccountID:    m.AccountID,
			Symbol:       m.Symbol,
			Shares:       m.Shares,
			AveragePrice: m.AveragePrice,
			TotalCost:    m.TotalCost,
			CurrentPrice: m.CurrentPrice,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading holding rows: %w", err)
	}
	return holdings, nil
}
