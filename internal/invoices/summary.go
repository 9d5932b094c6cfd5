package invoices

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SummaryLine is one formatted row of a printable invoice.
type SummaryLine struct {
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// Summary is the print-ready view of an invoice with grouped-digit
// amount strings.
type Summary struct {
	InvoiceNumber string        `json:"invoice_number"`
	CustomerName  string        `json:"customer_name"`
	InvoiceDate   string        `json:"invoice_date"`
	DueDate       string        `json:"due_date"`
	Status        string        `json:"status"`
	Currency      string        `json:"currency"`
	Lines         []SummaryLine `json:"lines"`
	Subtotal      string        `json:"subtotal"`
	Discount      string        `json:"discount"`
	ShippingCost  string        `json:"shipping_cost"`
	Total         string        `json:"total"`
}

// BuildSummary renders an invoice for printing. Indian-style digit
// grouping matches the currency the business operates in.
func BuildSummary(inv Invoice) Summary {
	p := message.NewPrinter(language.English)
	if strings.EqualFold(inv.Currency, "INR") {
		p = message.NewPrinter(language.MustParse("en-IN"))
	}
	money := func(v float64) string {
		return p.Sprintf("%s %.2f", inv.Currency, v)
	}

	lines := make([]SummaryLine, 0, len(inv.Items))
	for _, item := range inv.Items {
		lines = append(lines, SummaryLine{
			ProductName: item.ProductName,
			Quantity:    p.Sprintf("%v", item.Quantity),
			Rate:        money(item.Rate),
			Amount:      money(item.TotalAmount),
		})
	}
	return Summary{
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		InvoiceDate:   inv.InvoiceDate.Format("02 Jan 2006"),
		DueDate:       inv.DueDate.Format("02 Jan 2006"),
		Status:        inv.Status,
		Currency:      inv.Currency,
		Lines:         lines,
		Subtotal:      money(inv.Subtotal),
		Discount:      money(inv.Discount),
		ShippingCost:  money(inv.ShippingCost),
		Total:         money(inv.TotalAmount),
	}
}
