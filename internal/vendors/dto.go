package vendors

type CreateVendorRequest struct {
	Name              string   `json:"vendor_name" validate:"required,max=200"`
	GSTNo             *string  `json:"gst_no,omitempty" validate:"omitempty,max=50"`
	Type              *string  `json:"vendor_type,omitempty" validate:"omitempty,max=100"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address           *string  `json:"address,omitempty"`
	BankName          *string  `json:"bank_name,omitempty" validate:"omitempty,max=200"`
	BankAccountNumber *string  `json:"bank_account_number,omitempty" validate:"omitempty,max=50"`
	IFSCCode          *string  `json:"ifsc_code,omitempty" validate:"omitempty,max=20"`
	IsActive          *bool    `json:"is_active,omitempty"`
	Payables          *float64 `json:"payables,omitempty" validate:"omitempty,gte=0"`
}

type UpdateVendorRequest struct {
	Name              string   `json:"vendor_name" validate:"required,max=200"`
	GSTNo             *string  `json:"gst_no,omitempty" validate:"omitempty,max=50"`
	Type              *string  `json:"vendor_type,omitempty" validate:"omitempty,max=100"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address           *string  `json:"address,omitempty"`
	BankName          *string  `json:"bank_name,omitempty" validate:"omitempty,max=200"`
	BankAccountNumber *string  `json:"bank_account_number,omitempty" validate:"omitempty,max=50"`
	IFSCCode          *string  `json:"ifsc_code,omitempty" validate:"omitempty,max=20"`
	IsActive          *bool    `json:"is_active,omitempty"`
	Payables          *float64 `json:"payables,omitempty" validate:"omitempty,gte=0"`
}
