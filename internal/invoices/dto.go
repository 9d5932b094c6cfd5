package invoices

// InvoiceItemInput carries one requested line. Amounts are recomputed
// server-side from quantity and rate, never trusted from the client.
type InvoiceItemInput struct {
	ProductName string  `json:"product_name" validate:"required,max=255"`
	Description *string `json:"description,omitempty"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Rate        float64 `json:"rate" validate:"required,gte=0"`
}

type CreateInvoiceRequest struct {
	CustomerID      *int64             `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	CustomerName    string             `json:"customer_name" validate:"required,max=255"`
	CustomerAddress *string            `json:"customer_address,omitempty"`
	InvoiceNumber   string             `json:"invoice_number" validate:"required,max=100"`
	InvoiceDate     string             `json:"invoice_date" validate:"required"`
	DueDate         string             `json:"due_date" validate:"required"`
	PaymentTerms    *string            `json:"payment_terms,omitempty"`
	Status          string             `json:"status" validate:"omitempty,max=50"`
	Memo            *string            `json:"memo,omitempty"`
	Discount        float64            `json:"discount" validate:"gte=0"`
	ShippingCost    float64            `json:"shipping_cost" validate:"gte=0"`
	Currency        string             `json:"currency" validate:"omitempty,len=3"`
	Items           []InvoiceItemInput `json:"invoice_items" validate:"required,min=1,dive"`
}

type UpdateInvoiceRequest = CreateInvoiceRequest
