package pgsql

import (
	portsrepo "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		ChatLinkRepo: newPgxChatLinkRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
		CardRepo:     newPgxCardRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		HoldingRepo:  newPgxHoldingRepository(dbPool),
		BudgetRepo:   newPgxBudgetRepository(dbPool),
	}
}
