package repositories

import (
	"context"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
)

// CategoryReader defines read operations for categories. Categories are
// created and edited from the dashboard; this core only reads active rows.
type CategoryReader interface {
	// FindCategoryByName resolves an exact, case-sensitive name among the
	// account's active categories of the given type. Duplicate names must
	// resolve to the earliest-created row.
	FindCategoryByName(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error)

	// FindDefaultCategory returns the earliest-created active category of
	// the given type for the account.
	FindDefaultCategory(ctx context.Context, accountID string, categoryType domain.CategoryType) (*domain.Category, error)

	// ListActiveCategories lists the account's active categories of the
	// given type, ordered by name.
	ListActiveCategories(ctx context.Context, accountID string, categoryType domain.CategoryType) ([]domain.Category, error)
}

// CardReader defines read operations for cards.
type CardReader interface {
	// FindCardByName resolves an exact, case-sensitive name among the
	// account's active cards. Duplicate names resolve to the
	// earliest-created row.
	FindCardByName(ctx context.Context, accountID, name string) (*domain.Card, error)

	// ListActiveCards lists the account's active cards, ordered by name.
	ListActiveCards(ctx context.Context, accountID string) ([]domain.Card, error)
}
