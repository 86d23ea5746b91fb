package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/grocery-bot/internal/entity/grocery"
)

func item(price string, qty int, purchased bool) grocery.Item {
	return grocery.Item{
		Name:      "item",
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
		Purchased: purchased,
		Category:  grocery.Other,
	}
}

func Test_Summarize_EmptyList(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalItems)
	assert.Equal(t, 0, s.PurchasedItems)
	assert.True(t, s.TotalCost.IsZero())
	assert.True(t, s.PurchasedCost.IsZero())
	assert.True(t, s.RemainingCost.IsZero())
	assert.Equal(t, 0, s.CompletionPercent())
}

func Test_Summarize_HalfPurchased(t *testing.T) {
	s := Summarize([]grocery.Item{
		item("2.50", 2, true),
		item("5.00", 1, false),
	})

	assert.Equal(t, 2, s.TotalItems)
	assert.Equal(t, 1, s.PurchasedItems)
	assert.Equal(t, "10", s.TotalCost.String())
	assert.Equal(t, "5", s.PurchasedCost.String())
	assert.Equal(t, "5", s.RemainingCost.String())
	assert.Equal(t, 50, s.CompletionPercent())
}

func Test_Summarize_CostInvariant(t *testing.T) {
	items := []grocery.Item{
		item("0.10", 3, true),
		item("0.20", 7, false),
		item("19.99", 1, true),
		item("0", 4, false),
		item("3.333", 3, false),
	}
	s := Summarize(items)

	assert.True(t, s.PurchasedCost.Add(s.RemainingCost).Equal(s.TotalCost))
	assert.True(t, s.PurchasedItems >= 0 && s.PurchasedItems <= s.TotalItems)
	assert.Equal(t, "20.29", s.PurchasedCost.String())
	assert.Equal(t, "11.399", s.RemainingCost.String())
}

func Test_CompletionPercent_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		purchased, total, want int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 8, 38},
		{0, 5, 0},
		{5, 5, 100},
	}
	for _, tt := range tests {
		s := Summary{PurchasedItems: tt.purchased, TotalItems: tt.total}
		assert.Equal(t, tt.want, s.CompletionPercent(), "%d/%d", tt.purchased, tt.total)
	}
}

func Test_ByCategory_SumsRemainingOnly(t *testing.T) {
	items := []grocery.Item{
		{Name: "Milk", Price: decimal.RequireFromString("1.5"), Quantity: 2, Category: grocery.Dairy},
		{Name: "Cheese", Price: decimal.RequireFromString("4"), Quantity: 1, Category: grocery.Dairy},
		{Name: "Cola", Price: decimal.RequireFromString("2"), Quantity: 1, Category: grocery.Beverages, Purchased: true},
	}
	got := ByCategory(items)

	assert.Len(t, got, 1)
	assert.Equal(t, "7", got[grocery.Dairy].String())
}
