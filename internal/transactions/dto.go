package transactions

type CreateTransactionRequest struct {
	ProjectID       *int64  `json:"project_id,omitempty" validate:"omitempty,gt=0"`
	Date            string  `json:"transaction_date" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Method          string  `json:"transaction_method" validate:"required,max=50"`
	Category        string  `json:"category" validate:"required,max=100"`
	Description     *string `json:"description,omitempty"`
	ReferenceNumber *string `json:"reference_number,omitempty" validate:"omitempty,max=100"`
	VendorID        *int64  `json:"vendor_id,omitempty" validate:"omitempty,gt=0"`
	Type            string  `json:"type" validate:"omitempty,oneof=spend receive"`
}

type UpdateTransactionRequest struct {
	ProjectID       *int64  `json:"project_id,omitempty" validate:"omitempty,gt=0"`
	Date            string  `json:"transaction_date" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Method          string  `json:"transaction_method" validate:"required,max=50"`
	Category        string  `json:"category" validate:"required,max=100"`
	Description     *string `json:"description,omitempty"`
	ReferenceNumber *string `json:"reference_number,omitempty" validate:"omitempty,max=100"`
	VendorID        *int64  `json:"vendor_id,omitempty" validate:"omitempty,gt=0"`
	Type            string  `json:"type" validate:"omitempty,oneof=spend receive"`
}
