package budget

import (
	"github.com/shopspring/decimal"
	"max.ks1230/grocery-bot/internal/entity/grocery"
)

// Summary holds raw base-currency totals; rounding is left to the formatter.
type Summary struct {
	TotalItems     int
	PurchasedItems int
	TotalCost      decimal.Decimal
	PurchasedCost  decimal.Decimal
	RemainingCost  decimal.Decimal
}

func Summarize(items []grocery.Item) Summary {
	res := Summary{
		TotalCost:     decimal.Zero,
		PurchasedCost: decimal.Zero,
	}
	for _, item := range items {
		cost := item.Cost()
		res.TotalItems++
		res.TotalCost = res.TotalCost.Add(cost)
		if item.Purchased {
			res.PurchasedItems++
			res.PurchasedCost = res.PurchasedCost.Add(cost)
		}
	}
	res.RemainingCost = res.TotalCost.Sub(res.PurchasedCost)
	return res
}

// CompletionPercent rounds half up and is 0 for an empty list.
func (s Summary) CompletionPercent() int {
	if s.TotalItems == 0 {
		return 0
	}
	return (s.PurchasedItems*200 + s.TotalItems) / (2 * s.TotalItems)
}

// ByCategory sums the remaining (not purchased) cost per category.
func ByCategory(items []grocery.Item) map[grocery.Category]decimal.Decimal {
	res := make(map[grocery.Category]decimal.Decimal)
	for _, item := range items {
		if item.Purchased {
			continue
		}
		cur, ok := res[item.Category]
		if !ok {
			cur = decimal.Zero
		}
		res[item.Category] = cur.Add(item.Cost())
	}
	return res
}
