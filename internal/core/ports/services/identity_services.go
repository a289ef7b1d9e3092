package services

import (
	"context"
)

// IdentitySvc links chat identities to accounts and resolves them on every
// inbound command.
type IdentitySvc interface {
	// Link associates a chat identity with the account registered under the
	// given email. Fails with apperrors.ErrNotFound when the email is
	// unknown, and with apperrors.AlreadyLinkedError when either side is
	// already linked elsewhere. Re-linking an identical pair is a no-op.
	Link(ctx context.Context, chatID int64, email string) error

	// AccountForChat resolves a chat identity to an account ID. Returns
	// apperrors.ErrNotFound when the chat is not linked.
	AccountForChat(ctx context.Context, chatID int64) (string, error)

	// VerifyAccount checks that an account exists. Returns
	// apperrors.ErrNotFound when it does not.
	VerifyAccount(ctx context.Context, accountID string) error
}
