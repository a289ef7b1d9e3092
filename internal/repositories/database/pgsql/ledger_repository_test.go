package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertStockTransactionQuery_UsesTransactionTypeColumn(t *testing.T) {
	assert.Contains(t, insertStockTransactionQuery, "transaction_type")
	assert.NotContains(t, insertStockTransactionQuery, "trade_type")
}
