// Package vendors implements vendor master data CRUD.
package vendors

import "time"

// Vendor represents a supplier the company purchases from and pays.
type Vendor struct {
	ID                int64    `json:"vendor_id"`
	Name              string   `json:"vendor_name"`
	GSTNo             *string  `json:"gst_no,omitempty"`
	Type              *string  `json:"vendor_type,omitempty"`
	Email             string   `json:"email"`
	Phone             *string  `json:"phone,omitempty"`
	Address           *string  `json:"address,omitempty"`
	BankName          *string  `json:"bank_name,omitempty"`
	BankAccountNumber *string  `json:"bank_account_number,omitempty"`
	IFSCCode          *string  `json:"ifsc_code,omitempty"`
	IsActive          bool     `json:"is_active"`
	CreatedBy         *int64   `json:"created_by,omitempty"`
	Payables          *float64 `json:"payables,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
