package invoices

import "math"

// round2 keeps stored amounts at two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// buildItems computes line amounts from quantity and rate.
func buildItems(inputs []InvoiceItemInput) []InvoiceItem {
	items := make([]InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		amount := round2(in.Quantity * in.Rate)
		items = append(items, InvoiceItem{
			ProductName: in.ProductName,
			Description: in.Description,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
			Amount:      amount,
			TotalAmount: amount,
		})
	}
	return items
}

// computeTotals derives the invoice subtotal and grand total from its
// items, discount and shipping cost.
func computeTotals(items []InvoiceItem, discount, shipping float64) (subtotal, total float64) {
	for _, item := range items {
		subtotal += item.TotalAmount
	}
	subtotal = round2(subtotal)
	total = round2(subtotal - discount + shipping)
	return subtotal, total
}
