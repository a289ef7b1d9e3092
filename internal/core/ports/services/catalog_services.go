package services

import (
	"context"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
)

// CatalogSvc resolves human-supplied category and card names to stable
// records, scoped to one account's active rows.
type CatalogSvc interface {
	// ResolveCategory resolves an exact, case-sensitive category name of the
	// given type. Duplicate names resolve to the earliest-created row.
	ResolveCategory(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error)

	// ResolveCard resolves an exact, case-sensitive card name.
	ResolveCard(ctx context.Context, accountID, name string) (*domain.Card, error)

	// DefaultStockCategory returns the earliest-created active stock
	// category; stock commands carry no explicit category argument.
	DefaultStockCategory(ctx context.Context, accountID string) (*domain.Category, error)

	// ListCategories lists the account's active categories of the given type.
	ListCategories(ctx context.Context, accountID string, categoryType domain.CategoryType) ([]domain.Category, error)

	// ListCards lists the account's active cards.
	ListCards(ctx context.Context, accountID string) ([]domain.Card, error)
}
