package invoices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildItemsComputesAmounts(t *testing.T) {
	items := buildItems([]InvoiceItemInput{
		{ProductName: "Cement bags", Quantity: 10, Rate: 425.50},
		{ProductName: "Steel rods", Quantity: 3, Rate: 1200},
	})

	assert.Equal(t, 4255.0, items[0].Amount)
	assert.Equal(t, 4255.0, items[0].TotalAmount)
	assert.Equal(t, 3600.0, items[1].Amount)
}

func TestBuildItemsRoundsToTwoDecimals(t *testing.T) {
	items := buildItems([]InvoiceItemInput{
		{ProductName: "Wire", Quantity: 3, Rate: 0.333},
	})

	assert.Equal(t, 1.0, items[0].Amount)
}

func TestComputeTotals(t *testing.T) {
	items := buildItems([]InvoiceItemInput{
		{ProductName: "A", Quantity: 2, Rate: 100},
		{ProductName: "B", Quantity: 1, Rate: 50},
	})

	subtotal, total := computeTotals(items, 25, 10)
	assert.Equal(t, 250.0, subtotal)
	assert.Equal(t, 235.0, total)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	subtotal, total := computeTotals(nil, 0, 0)
	assert.Zero(t, subtotal)
	assert.Zero(t, total)
}
