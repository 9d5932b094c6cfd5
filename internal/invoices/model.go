// Package invoices implements customer invoices with line items.
package invoices

import "time"

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	ID          int64   `json:"item_id"`
	InvoiceID   int64   `json:"invoice_id"`
	ProductName string  `json:"product_name"`
	Description *string `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	TotalAmount float64 `json:"total_amount"`
}

// Invoice is a customer invoice header plus its items.
type Invoice struct {
	ID              int64         `json:"invoice_id"`
	CustomerID      *int64        `json:"customer_id,omitempty"`
	CustomerName    string        `json:"customer_name"`
	CustomerAddress *string       `json:"customer_address,omitempty"`
	InvoiceNumber   string        `json:"invoice_number"`
	InvoiceDate     time.Time     `json:"invoice_date"`
	DueDate         time.Time     `json:"due_date"`
	PaymentTerms    *string       `json:"payment_terms,omitempty"`
	Status          string        `json:"status"`
	Memo            *string       `json:"memo,omitempty"`
	Discount        float64       `json:"discount"`
	ShippingCost    float64       `json:"shipping_cost"`
	Subtotal        float64       `json:"subtotal"`
	TotalAmount     float64       `json:"total_amount"`
	Currency        string        `json:"currency"`
	CreatedAt       time.Time     `json:"created_at"`
	Items           []InvoiceItem `json:"invoice_items"`
}
