// Package purchaseorders implements purchase orders raised against vendors.
package purchaseorders

import "time"

// OrderItem is one ordered line with its tax treatment.
type OrderItem struct {
	ID          int64   `json:"item_id"`
	OrderID     int64   `json:"po_id"`
	ProductName string  `json:"product_name"`
	Description *string `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	TaxRate     float64 `json:"tax_rate"`
	Amount      float64 `json:"amount"`
	TotalAmount float64 `json:"total_amount"`
}

// PurchaseOrder is a PO header plus its items.
type PurchaseOrder struct {
	ID               int64       `json:"po_id"`
	VendorID         *int64      `json:"vendor_id,omitempty"`
	VendorName       *string     `json:"vendor_name,omitempty"`
	PONumber         string      `json:"po_number"`
	OrderDate        *time.Time  `json:"order_date,omitempty"`
	ExpectedDelivery *time.Time  `json:"expected_delivery,omitempty"`
	BillingAddress   *string     `json:"billing_address,omitempty"`
	Status           string      `json:"status"`
	Memo             *string     `json:"memo,omitempty"`
	Discount         float64     `json:"discount"`
	ShippingCost     float64     `json:"shipping_cost"`
	Subtotal         float64     `json:"subtotal"`
	TotalAmount      float64     `json:"total_amount"`
	Currency         string      `json:"currency"`
	CreatedAt        time.Time   `json:"created_at"`
	Items            []OrderItem `json:"purchase_order_items"`
}
