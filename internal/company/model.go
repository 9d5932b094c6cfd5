// Package company manages the singleton company profile.
package company

import "time"

// Details is the company profile. Logo carries the image as a base64
// data URL in responses; the raw bytes live in the database.
type Details struct {
	ID                 int64      `json:"id"`
	CompanyName        string     `json:"company_name"`
	Address            *string    `json:"address,omitempty"`
	City               *string    `json:"city,omitempty"`
	State              *string    `json:"state,omitempty"`
	PinCode            *string    `json:"pin_code,omitempty"`
	Country            *string    `json:"country,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	Email              *string    `json:"email,omitempty"`
	GSTNo              *string    `json:"gst_no,omitempty"`
	RegistrationNumber *string    `json:"registration_number,omitempty"`
	IsOwnCompany       bool       `json:"is_own_company"`
	Logo               *string    `json:"logo"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`

	logoBytes []byte
}

// UpdateFields carries a partial profile update. Nil fields are left
// untouched; a non-nil Logo replaces the stored image.
type UpdateFields struct {
	CompanyName        *string
	Address            *string
	City               *string
	State              *string
	PinCode            *string
	Country            *string
	Phone              *string
	Email              *string
	GSTNo              *string
	RegistrationNumber *string
	IsOwnCompany       *bool
	Logo               []byte
}
