package purchaseorders

import "math"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// buildItems computes line amounts. Amount is the pre-tax value,
// TotalAmount includes the line's tax.
func buildItems(inputs []OrderItemInput) []OrderItem {
	items := make([]OrderItem, 0, len(inputs))
	for _, in := range inputs {
		amount := round2(in.Quantity * in.Rate)
		total := round2(amount * (1 + in.TaxRate/100))
		items = append(items, OrderItem{
			ProductName: in.ProductName,
			Description: in.Description,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
			TaxRate:     in.TaxRate,
			Amount:      amount,
			TotalAmount: total,
		})
	}
	return items
}

func computeTotals(items []OrderItem, discount, shipping float64) (subtotal, total float64) {
	for _, item := range items {
		subtotal += item.TotalAmount
	}
	subtotal = round2(subtotal)
	total = round2(subtotal - discount + shipping)
	return subtotal, total
}
