package domain

import "github.com/shopspring/decimal"

type CartItem struct {
	Cocktail Cocktail `json:"cocktail"`
	Quantity int      `json:"quantity"`
}

// Subtotal is price × quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Cocktail.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal sums the subtotals of items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
