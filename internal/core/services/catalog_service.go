package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	portsrepo "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/repositories"
	portssvc "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/services"
)

type catalogService struct {
	categoryRepo portsrepo.CategoryReader
	cardRepo     portsrepo.CardReader
}

// NewCatalogService creates the service that resolves category and card
// names to stable records.
func NewCatalogService(categoryRepo portsrepo.CategoryReader, cardRepo portsrepo.CardReader) portssvc.CatalogSvc {
	return &catalogService{
		categoryRepo: categoryRepo,
		cardRepo:     cardRepo,
	}
}

var _ portssvc.CatalogSvc = (*catalogService)(nil)

func (s *catalogService) ResolveCategory(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByName(ctx, accountID, name, categoryType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound(apperrors.NotFoundCategory, name)
		}
		return nil, fmt.Errorf("failed to resolve category %q: %w", name, err)
	}
	return category, nil
}

func (s *catalogService) ResolveCard(ctx context.Context, accountID, name string) (*domain.Card, error) {
	card, err := s.cardRepo.FindCardByName(ctx, accountID, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound(apperrors.NotFoundCard, name)
		}
		return nil, fmt.Errorf("failed to resolve card %q: %w", name, err)
	}
	return card, nil
}

func (s *catalogService) DefaultStockCategory(ctx context.Context, accountID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindDefaultCategory(ctx, accountID, domain.CategoryStock)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound(apperrors.NotFoundStockCategory, "")
		}
		return nil, fmt.Errorf("failed to resolve default stock category: %w", err)
	}
	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context, accountID string, categoryType domain.CategoryType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListActiveCategories(ctx, accountID, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) ListCards(ctx context.Context, accountID string) ([]domain.Card, error) {
	cards, err := s.cardRepo.ListActiveCards(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}
