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
)

type identityService struct {
	accountRepo  portsrepo.AccountReader
	chatLinkRepo portsrepo.ChatLinkRepositoryFacade
}

// NewIdentityService creates the service that links chat identities to
// accounts.
func NewIdentityService(accountRepo portsrepo.AccountReader, chatLinkRepo portsrepo.ChatLinkRepositoryFacade) portssvc.IdentitySvc {
	return &identityService{
		accountRepo:  accountRepo,
		chatLinkRepo: chatLinkRepo,
	}
}

var _ portssvc.IdentitySvc = (*identityService)(nil)

func (s *identityService) Link(ctx context.Context, chatID int64, email string) error {
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound(apperrors.NotFoundEmail, email)
		}
		return fmt.Errorf("failed to resolve account for link: %w", err)
	}

	// Pre-checks give precise conflict messages, but the insert below is the
	// actual race guard: both columns carry storage-level uniqueness.
	existing, err := s.chatLinkRepo.FindLinkByAccountID(ctx, account.AccountID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check account-side link: %w", err)
	}
	if existing != nil {
		if existing.ChatID == chatID {
			// Same pair already linked: no duplicate row, no error.
			return nil
		}
		return &apperrors.AlreadyLinkedError{Side: apperrors.AccountSide}
	}

	existing, err = s.chatLinkRepo.FindLinkByChatID(ctx, chatID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check chat-side link: %w", err)
	}
	if existing != nil {
		return &apperrors.AlreadyLinkedError{Side: apperrors.ChatSide}
	}

	link := domain.ChatLink{
		ChatID:    chatID,
		AccountID: account.AccountID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.chatLinkRepo.SaveLink(ctx, link); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent link won the insert; report the losing side.
			return s.classifyLinkConflict(ctx, chatID, account.AccountID)
		}
		return fmt.Errorf("failed to save chat link: %w", err)
	}
	return nil
}

// classifyLinkConflict re-reads both sides after a conflicting insert to
// decide which uniqueness constraint fired.
func (s *identityService) classifyLinkConflict(ctx context.Context, chatID int64, accountID string) error {
	if link, err := s.chatLinkRepo.FindLinkByAccountID(ctx, accountID); err == nil && link != nil {
		if link.ChatID == chatID {
			return nil
		}
		return &apperrors.AlreadyLinkedError{Side: apperrors.AccountSide}
	}
	return &apperrors.AlreadyLinkedError{Side: apperrors.ChatSide}
}

func (s *identityService) VerifyAccount(ctx context.Context, accountID string) error {
	_, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up account %s: %w", accountID, err)
	}
	return nil
}

func (s *identityService) AccountForChat(ctx context.Context, chatID int64) (string, error) {
	link, err := s.chatLinkRepo.FindLinkByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to look up chat link: %w", err)
	}
	return link.AccountID, nil
}
