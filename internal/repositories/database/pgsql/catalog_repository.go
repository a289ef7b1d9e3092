package pgsql

import (
	"context"
	"fmt"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	portsrepo "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/repositories"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryReader {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryReader = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, account_id, name, category_type, color, is_active, parent_id, created_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.AccountID,
		&m.Name,
		&m.Type,
		&m.Color,
		&m.IsActive,
		&m.ParentID,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &domain.Category{
		CategoryID: m.CategoryID,
		AccountID:  m.AccountID,
		Name:       m.Name,
		Type:       domain.CategoryType(m.Type),
		Color:      m.Color,
		IsActive:   m.IsActive,
		ParentID:   m.ParentID,
		CreatedAt:  m.CreatedAt,
	}, nil
}

// earliestCategory picks the winner among duplicate category rows: the
// oldest created_at first, with the ID as a stable tie-break.
func earliestCategory(categories []domain.Category) *domain.Category {
	var winner *domain.Category
	for i := range categories {
		c := &categories[i]
		if winner == nil ||
			c.CreatedAt.Before(winner.CreatedAt) ||
			(c.CreatedAt.Equal(winner.CreatedAt) && c.CategoryID < winner.CategoryID) {
			winner = c
		}
	}
	return winner
}

func (r *PgxCategoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading category rows: %w", err)
	}
	return categories, nil
}

// FindCategoryByName resolves an exact, case-sensitive name among the
// account's active categories of the given type. Duplicate names resolve to
// the earliest-created row.
func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE account_id = $1 AND name = $2 AND category_type = $3 AND is_active = TRUE;
	`, categoryColumns)

	categories, err := r.queryCategories(ctx, query, accountID, name, string(categoryType))
	if err != nil {
		return nil, fmt.Errorf("failed to find category %q: %w", name, err)
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return earliestCategory(categories), nil
}

// FindDefaultCategory returns the earliest-created active category of the
// given type for the account.
func (r *PgxCategoryRepository) FindDefaultCategory(ctx context.Context, accountID string, categoryType domain.CategoryType) (*domain.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE account_id = $1 AND category_type = $2 AND is_active = TRUE;
	`, categoryColumns)

	categories, err := r.queryCategories(ctx, query, accountID, string(categoryType))
	if err != nil {
		return nil, fmt.Errorf("failed to find default %s category: %w", categoryType, err)
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return earliestCategory(categories), nil
}

// ListActiveCategories lists the account's active categories of the given
// type, ordered by name.
func (r *PgxCategoryRepository) ListActiveCategories(ctx context.Context, accountID string, categoryType domain.CategoryType) ([]domain.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE account_id = $1 AND category_type = $2 AND is_active = TRUE
		ORDER BY name;
	`, categoryColumns)

	return r.queryCategories(ctx, query, accountID, string(categoryType))
}

type PgxCardRepository struct {
	pool *pgxpool.Pool
}

// newPgxCardRepository creates a new repository for card data.
func newPgxCardRepository(pool *pgxpool.Pool) portsrepo.CardReader {
	return &PgxCardRepository{pool: pool}
}

var _ portsrepo.CardReader = (*PgxCardRepository)(nil)

func scanCard(row pgx.Row) (*domain.Card, error) {
	var m models.Card
	err := row.Scan(
		&m.CardID,
		&m.AccountID,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &domain.Card{
		CardID:    m.CardID,
		AccountID: m.AccountID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}, nil
}

// earliestCard picks the winner among duplicate card rows: the oldest
// created_at first, with the ID as a stable tie-break.
func earliestCard(cards []domain.Card) *domain.Card {
	var winner *domain.Card
	for i := range cards {
		c := &cards[i]
		if winner == nil ||
			c.CreatedAt.Before(winner.CreatedAt) ||
			(c.CreatedAt.Equal(winner.CreatedAt) && c.CardID < winner.CardID) {
			winner = c
		}
	}
	return winner
}

func (r *PgxCardRepository) queryCards(ctx context.Context, query string, args ...any) ([]domain.Card, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading card rows: %w", err)
	}
	return cards, nil
}

// FindCardByName resolves an exact, case-sensitive card name. Same
// earliest-created tie-break as categories.
func (r *PgxCardRepository) FindCardByName(ctx context.Context, accountID, name string) (*domain.Card, error) {
	query := `
		SELECT card_id, account_id, name, is_active, created_at
		FROM cards
		WHERE account_id = $1 AND name = $2 AND is_active = TRUE;
	`
	cards, err := r.queryCards(ctx, query, accountID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find card %q: %w", name, err)
	}
	if len(cards) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return earliestCard(cards), nil
}

// ListActiveCards lists the account's active cards, ordered by name.
func (r *PgxCardRepository) ListActiveCards(ctx context.Context, accountID string) ([]domain.Card, error) {
	query := `
		SELECT card_id, account_id, name, is_active, created_at
		FROM cards
		WHERE account_id = $1 AND is_active = TRUE
		ORDER BY name;
	`
	return r.queryCards(ctx, query, accountID)
}
