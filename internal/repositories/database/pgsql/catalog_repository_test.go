package pgsql

import (
	"testing"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarliestCategory_DuplicateNamesPickOldest(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	categories := []domain.Category{
		{CategoryID: "cat-3", Name: "Food", CreatedAt: base.Add(48 * time.Hour)},
		{CategoryID: "cat-1", Name: "Food", CreatedAt: base},
		{CategoryID: "cat-2", Name: "Food", CreatedAt: base.Add(24 * time.Hour)},
	}

	winner := earliestCategory(categories)

	require.NotNil(t, winner)
	assert.Equal(t, "cat-1", winner.CategoryID)
}

func TestEarliestCategory_EqualTimestampsFallBackToID(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	categories := []domain.Category{
		{CategoryID: "cat-b", Name: "Food", CreatedAt: created},
		{CategoryID: "cat-a", Name: "Food", CreatedAt: created},
	}

	winner := earliestCategory(categories)

	require.NotNil(t, winner)
	assert.Equal(t, "cat-a", winner.CategoryID)
}

func TestEarliestCategory_Empty(t *testing.T) {
	assert.Nil(t, earliestCategory(nil))
}

func TestEarliestCard_DuplicateNamesPickOldest(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cards := []domain.Card{
		{CardID: "card-2", Name: "Visa", CreatedAt: base.Add(time.Hour)},
		{CardID: "card-1", Name: "Visa", CreatedAt: base},
	}

	winner := earliestCard(cards)

	require.NotNil(t, winner)
	assert.Equal(t, "card-1", winner.CardID)
}

func TestEarliestCard_EqualTimestampsFallBackToID(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cards := []domain.Card{
		{CardID: "card-z", Name: "Visa", CreatedAt: created},
		{CardID: "card-a", Name: "Visa", CreatedAt: created},
	}

	winner := earliestCard(cards)

	require.NotNil(t, winner)
	assert.Equal(t, "card-a", winner.CardID)
}
