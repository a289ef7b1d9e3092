package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTradeType(t *testing.T) {
	tests := []struct {
		input string
		want  TradeType
		ok    bool
	}{
		{"buy", TradeBuy, true},
		{"sell", TradeSell, true},
		{"BUY", TradeBuy, true},
		{"Sell", TradeSell, true},
		{"hold", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseTradeType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
