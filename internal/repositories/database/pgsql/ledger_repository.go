package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	portsrepo "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/repositories"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveTransaction inserts one immutable expense row.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, account_id, amount, description, category_id, card_id, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.AccountID,
		txn.Amount,
		txn.Description,
		txn.CategoryID,
		txn.CardID,
		txn.TransactionDate,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, apperrors.Persistence(err))
	}
	return nil
}

// insertStockTransactionQuery writes the columns the dashboard reads back.
// The type column is transaction_type, matching the reporting views.
const insertStockTransactionQuery = `
		INSERT INTO stock_transactions (transaction_id, account_id, symbol, shares, price_per_share, total_amount, transaction_type, category_id, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

// SaveStockTransaction inserts one immutable security-trade row.
func (r *PgxLedgerRepository) SaveStockTransaction(ctx context.Context, txn domain.StockTransaction) error {
	_, err := r.pool.Exec(ctx, insertStockTransactionQuery,
		txn.TransactionID,
		txn.AccountID,
		txn.Symbol,
		txn.Shares,
		txn.PricePerShare,
		txn.TotalAmount,
		string(txn.TradeType),
		txn.CategoryID,
		txn.TransactionDate,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save stock transaction %s: %w", txn.TransactionID, apperrors.Persistence(err))
	}
	return nil
}

// windowClause appends optional date bounds to a WHERE clause, returning the
// updated clause and argument list.
func windowClause(clause string, args []any, from, to *time.Time) (string, []any) {
	if from != nil {
		args = append(args, *from)
		clause += fmt.Sprintf(" AND t.transaction_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		clause += fmt.Sprintf(" AND t.transaction_date <= $%d", len(args))
	}
	return clause, args
}

// SumExpenses totals the account's expense amounts, optionally bounded by a
// date window. COALESCE keeps an empty window at zero instead of NULL.
func (r *PgxLedgerRepository) SumExpenses(ctx context.Context, accountID string, from, to *time.Time) (decimal.Decimal, error) {
	clause, args := windowClause("t.account_id = $1", []any{accountID}, from, to)
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		WHERE %s;
	`, clause)

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for account %s: %w", accountID, err)
	}
	return total, nil
}

// ListExpenses returns the account's expense rows joined with their display
// fields, newest first.
func (r *PgxLedgerRepository) ListExpenses(ctx context.Context, accountID string, from, to *time.Time) ([]domain.ExpenseRecord, error) {
	clause, args := windowClause("t.account_id = $1", []any{accountID}, from, to)
	query := fmt.Sprintf(`
		SELECT t.transaction_id, t.account_id, t.amount, t.description, t.category_id, t.card_id, t.transaction_date, t.created_at,
		       c.name, c.color, cd.name
		FROM transactions t
		JOIN categories c ON c.category_id = t.category_id
		JOIN cards cd ON cd.card_id = t.card_id
		WHERE %s
		ORDER BY t.transaction_date DESC, t.created_at DESC;
	`, clause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var records []domain.ExpenseRecord
	for rows.Next() {
		var m models.Transaction
		var record domain.ExpenseRecord
		err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.Amount,
			&m.Description,
			&m.CategoryID,
			&m.CardID,
			&m.TransactionDate,
			&m.CreatedAt,
			&record.CategoryName,
			&record.CategoryColor,
			&record.CardName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		record.Transaction = domain.Transaction{
			TransactionID:   m.TransactionID,
			AccountID:       m.AccountID,
			Amount:          m.Amount,
			Description:     m.Description,
			CategoryID:      m.CategoryID,
			CardID:          m.CardID,
			TransactionDate: m.TransactionDate,
			CreatedAt:       m.CreatedAt,
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading expense rows: %w", err)
	}
	return records, nil
}
