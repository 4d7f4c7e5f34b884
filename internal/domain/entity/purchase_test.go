package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPurchase_MinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"80.00", 8000},
		{"33.49", 3349},
		{"0.00", 0},
		{"0.01", 1},
		{"1234.56", 123456},
	}

	for _, tt := range tests {
		purchase := &Purchase{Amount: decimal.RequireFromString(tt.amount)}
		assert.Equal(t, tt.want, purchase.MinorUnits(), "amount %s", tt.amount)
	}
}

func TestPurchaseStatus_Terminal(t *testing.T) {
	assert.False(t, PurchaseStatusPending.Terminal())
	assert.True(t, PurchaseStatusCompleted.Terminal())
	assert.True(t, PurchaseStatusFailed.Terminal())
}
