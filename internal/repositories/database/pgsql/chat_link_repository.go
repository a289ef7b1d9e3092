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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChatLinkRepository struct {
	pool *pgxpool.Pool
}

// newPgxChatLinkRepository creates a new repository for chat link data.
func newPgxChatLinkRepository(pool *pgxpool.Pool) portsrepo.ChatLinkRepositoryFacade {
	return &PgxChatLinkRepository{pool: pool}
}

// Ensure PgxChatLinkRepository implements portsrepo.ChatLinkRepositoryFacade
var _ portsrepo.ChatLinkRepositoryFacade = (*PgxChatLinkRepository)(nil)

func toDomainChatLink(m models.ChatLink) domain.ChatLink {
	return domain.ChatLink{
		ChatID:    m.ChatID,
		AccountID: m.AccountID,
		CreatedAt: m.CreatedAt,
	}
}

// SaveLink inserts a new (chatID, accountID) pair. Uniqueness is enforced by
// the database constraints over both columns, so a concurrent insert of
// either side loses cleanly instead of racing a prior existence check.
func (r *PgxChatLinkRepository) SaveLink(ctx context.Context, link domain.ChatLink) error {
	query := `
		INSERT INTO chat_links (chat_id, account_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;
	`
	tag, err := r.pool.Exec(ctx, query, link.ChatID, link.AccountID, link.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: chat link already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save chat link for chat %d: %w", link.ChatID, apperrors.Persistence(err))
	}
	if tag.RowsAffected() == 0 {
		// A conflicting row on either column already existed.
		return fmt.Errorf("%w: chat link already exists", apperrors.ErrDuplicate)
	}
	return nil
}

// FindLinkByChatID retrieves the link for a chat identity, if any.
func (r *PgxChatLinkRepository) FindLinkByChatID(ctx context.Context, chatID int64) (*domain.ChatLink, error) {
	query := `
		SELECT chat_id, account_id, created_at
		FROM chat_links
		WHERE chat_id = $1;
	`
	var modelLink models.ChatLink
	err := r.pool.QueryRow(ctx, query, chatID).Scan(
		&modelLink.ChatID,
		&modelLink.AccountID,
		&modelLink.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find chat link for chat %d: %w", chatID, err)
	}

	domainLink := toDomainChatLink(modelLink)
	return &domainLink, nil
}

// FindLinkByAccountID retrieves the link for an account, if any.
func (r *PgxChatLinkRepository) FindLinkByAccountID(ctx context.Context, accountID string) (*domain.ChatLink, error) {
	query := `
		SELECT chat_id, account_id, created_at
		FROM chat_links
		WHERE account_id = $1;
	`
	var modelLink models.ChatLink
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&modelLink.ChatID,
		&modelLink.AccountID,
		&modelLink.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find chat link for account %s: %w", accountID, err)
	}

	domainLink := toDomainChatLink(modelLink)
	return &domainLink, nil
}
