package purchaseorders

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SummaryLine is one formatted row of a printable purchase order.
type SummaryLine struct {
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	TaxRate     string `json:"tax_rate"`
	Amount      string `json:"amount"`
}

// Summary is the print-ready view of a purchase order.
type Summary struct {
	PONumber         string        `json:"po_number"`
	VendorName       string        `json:"vendor_name"`
	OrderDate        string        `json:"order_date"`
	ExpectedDelivery string        `json:"expected_delivery"`
	Status           string        `json:"status"`
	Currency         string        `json:"currency"`
	Lines            []SummaryLine `json:"lines"`
	Subtotal         string        `json:"subtotal"`
	Discount         string        `json:"discount"`
	ShippingCost     string        `json:"shipping_cost"`
	Total            string        `json:"total"`
}

// BuildSummary renders a purchase order for printing.
func BuildSummary(po PurchaseOrder) Summary {
	p := message.NewPrinter(language.English)
	if strings.EqualFold(po.Currency, "INR") {
		p = message.NewPrinter(language.MustParse("en-IN"))
	}
	money := func(v float64) string {
		return p.Sprintf("%s %.2f", po.Currency, v)
	}
	date := func(ts *time.Time) string {
		if ts == nil {
			return ""
		}
		return ts.Format("02 Jan 2006")
	}

	lines := make([]SummaryLine, 0, len(po.Items))
	for _, item := range po.Items {
		lines = append(lines, SummaryLine{
			ProductName: item.ProductName,
			Quantity:    p.Sprintf("%v", item.Quantity),
			Rate:        money(item.Rate),
			TaxRate:     p.Sprintf("%.2f%%", item.TaxRate),
			Amount:      money(item.TotalAmount),
		})
	}
	vendorName := ""
	if po.VendorName != nil {
		vendorName = *po.VendorName
	}
	return Summary{
		PONumber:         po.PONumber,
		VendorName:       vendorName,
		OrderDate:        date(po.OrderDate),
		ExpectedDelivery: date(po.ExpectedDelivery),
		Status:           po.Status,
		Currency:         po.Currency,
		Lines:            lines,
		Subtotal:         money(po.Subtotal),
		Discount:         money(po.Discount),
		ShippingCost:     money(po.ShippingCost),
		Total:            money(po.TotalAmount),
	}
}
