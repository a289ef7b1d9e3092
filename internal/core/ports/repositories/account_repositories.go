package repositories

import (
	"context"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
)

// AccountReader defines read operations for account data. Accounts are
// created by the registration flow, so there is no writer side here.
type AccountReader interface {
	// FindAccountByEmail retrieves an account by exact, case-sensitive email.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// FindAccountByID retrieves an account by its ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// ChatLinkReader defines read operations for chat links.
type ChatLinkReader interface {
	// FindLinkByChatID retrieves the link for a chat identity, if any.
	FindLinkByChatID(ctx context.Context, chatID int64) (*domain.ChatLink, error)

	// FindLinkByAccountID retrieves the link for an account, if any.
	FindLinkByAccountID(ctx context.Context, accountID string) (*domain.ChatLink, error)
}

// ChatLinkWriter defines write operations for chat links.
type ChatLinkWriter interface {
	// SaveLink inserts a new (chatID, accountID) pair. The insert must be
	// conditional on the store's uniqueness constraints over both columns;
	// a conflicting concurrent insert surfaces as apperrors.ErrDuplicate.
	SaveLink(ctx context.Context, link domain.ChatLink) error
}

// ChatLinkRepositoryFacade combines all chat-link repository interfaces.
type ChatLinkRepositoryFacade interface {
	ChatLinkReader
	ChatLinkWriter
}
