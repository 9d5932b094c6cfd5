package purchaseorders

// OrderItemInput carries one requested line. Amounts are recomputed
// server-side from quantity, rate and tax rate.
type OrderItemInput struct {
	ProductName string  `json:"product_name" validate:"required,max=255"`
	Description *string `json:"description,omitempty"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Rate        float64 `json:"rate" validate:"required,gte=0"`
	TaxRate     float64 `json:"tax_rate" validate:"gte=0,lte=100"`
}

type CreateOrderRequest struct {
	VendorID         *int64           `json:"vendor_id,omitempty" validate:"omitempty,gt=0"`
	PONumber         string           `json:"po_number" validate:"required,max=100"`
	OrderDate        *string          `json:"order_date,omitempty"`
	ExpectedDelivery *string          `json:"expected_delivery,omitempty"`
	BillingAddress   *string          `json:"billing_address,omitempty"`
	Status           string           `json:"status" validate:"omitempty,max=50"`
	Memo             *string          `json:"memo,omitempty"`
	Discount         float64          `json:"discount" validate:"gte=0"`
	ShippingCost     float64          `json:"shipping_cost" validate:"gte=0"`
	Currency         string           `json:"currency" validate:"omitempty,len=3"`
	Items            []OrderItemInput `json:"purchase_order_items" validate:"required,min=1,dive"`
}

type UpdateOrderRequest = CreateOrderRequest
