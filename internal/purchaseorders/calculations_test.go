package purchaseorders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildItemsAppliesTax(t *testing.T) {
	items := buildItems([]OrderItemInput{
		{ProductName: "Cement bags", Quantity: 10, Rate: 100, TaxRate: 18},
	})

	assert.Equal(t, 1000.0, items[0].Amount)
	assert.Equal(t, 1180.0, items[0].TotalAmount)
}

func TestBuildItemsZeroTax(t *testing.T) {
	items := buildItems([]OrderItemInput{
		{ProductName: "Sand", Quantity: 5, Rate: 60},
	})

	assert.Equal(t, 300.0, items[0].Amount)
	assert.Equal(t, 300.0, items[0].TotalAmount)
}

func TestComputeTotalsWithTaxedLines(t *testing.T) {
	items := buildItems([]OrderItemInput{
		{ProductName: "A", Quantity: 2, Rate: 100, TaxRate: 18},
		{ProductName: "B", Quantity: 1, Rate: 50, TaxRate: 5},
	})

	subtotal, total := computeTotals(items, 8.5, 100)
	assert.Equal(t, 288.5, subtotal)
	assert.Equal(t, 380.0, total)
}
