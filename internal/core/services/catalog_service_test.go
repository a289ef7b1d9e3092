package services_test

import (
	"context"
	"testing"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestResolveCategory_Found(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		FindCategoryByNameFn: func(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error) {
			assert.Equal(t, testAccountID, accountID)
			assert.Equal(t, domain.CategoryExpense, categoryType)
			if name == "Food & Dining" {
				return &domain.Category{CategoryID: "cat-1", Name: name, Type: categoryType}, nil
			}
			return nil, apperrors.ErrNotFound
		},
	}
	svc := services.NewCatalogService(categoryRepo, &MockCardRepository{})

	category, err := svc.ResolveCategory(context.Background(), testAccountID, "Food & Dining", domain.CategoryExpense)
	assert.NoError(t, err)
	assert.Equal(t, "cat-1", category.CategoryID)
}

func TestResolveCategory_NotFoundCarriesName(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		FindCategoryByNameFn: func(ctx context.Context, accountID, name string, categoryType domain.CategoryType) (*domain.Category, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	svc := services.NewCatalogService(categoryRepo, &MockCardRepository{})

	_, err := svc.ResolveCategory(context.Background(), testAccountID, "Groceries", domain.CategoryExpense)
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, apperrors.NotFoundCategory, nf.Kind)
	assert.Equal(t, "Groceries", nf.Name)
}

func TestResolveCard_NotFoundCarriesName(t *testing.T) {
	cardRepo := &MockCardRepository{
		FindCardByNameFn: func(ctx context.Context, accountID, name string) (*domain.Card, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	svc := services.NewCatalogService(&MockCategoryRepository{}, cardRepo)

	_, err := svc.ResolveCard(context.Background(), testAccountID, "Main Card")
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, apperrors.NotFoundCard, nf.Kind)
	assert.Equal(t, "Main Card", nf.Name)
}

func TestDefaultStockCategory(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		FindDefaultCategoryFn: func(ctx context.Context, accountID string, categoryType domain.CategoryType) (*domain.Category, error) {
			assert.Equal(t, domain.CategoryStock, categoryType)
			return &domain.Category{CategoryID: "cat-stock", Type: domain.CategoryStock}, nil
		},
	}
	svc := services.NewCatalogService(categoryRepo, &MockCardRepository{})

	category, err := svc.DefaultStockCategory(context.Background(), testAccountID)
	assert.NoError(t, err)
	assert.Equal(t, "cat-stock", category.CategoryID)
}

func TestDefaultStockCategory_NoneExists(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		FindDefaultCategoryFn: func(ctx context.Context, accountID string, categoryType domain.CategoryType) (*domain.Category, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	svc := services.NewCatalogService(categoryRepo, &MockCardRepository{})

	_, err := svc.DefaultStockCategory(context.Background(), testAccountID)
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, apperrors.NotFoundStockCategory, nf.Kind)
}

func TestListCategoriesAndCards(t *testing.T) {
	categoryRepo := &MockCategoryRepository{
		ListActiveCategoriesFn: func(ctx context.Context, accountID string, categoryType domain.CategoryType) ([]domain.Category, error) {
			return []domain.Category{{Name: "Food & Dining"}, {Name: "Transport"}}, nil
		},
	}
	cardRepo := &MockCardRepository{
		ListActiveCardsFn: func(ctx context.Context, accountID string) ([]domain.Card, error) {
			return []domain.Card{{Name: "Main Card"}}, nil
		},
	}
	svc := services.NewCatalogService(categoryRepo, cardRepo)

	categories, err := svc.ListCategories(context.Background(), testAccountID, domain.CategoryExpense)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)

	cards, err := svc.ListCards(context.Background(), testAccountID)
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
}
