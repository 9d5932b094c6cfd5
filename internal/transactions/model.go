// Package transactions implements the financial transactions ledger.
package transactions

import "time"

// Transaction types.
const (
	TypeSpend   = "spend"
	TypeReceive = "receive"
)

// VendorRef is the vendor summary embedded in transaction listings.
type VendorRef struct {
	ID   int64  `json:"vendor_id"`
	Name string `json:"vendor_name"`
}

// Transaction represents one money movement, optionally tied to a vendor.
type Transaction struct {
	ID              int64      `json:"transaction_id"`
	ProjectID       *int64     `json:"project_id,omitempty"`
	Date            time.Time  `json:"transaction_date"`
	Amount          float64    `json:"amount"`
	Method          string     `json:"transaction_method"`
	Category        string     `json:"category"`
	Description     *string    `json:"description,omitempty"`
	ReferenceNumber *string    `json:"reference_number,omitempty"`
	VendorID        *int64     `json:"vendor_id,omitempty"`
	CreatedBy       *int64     `json:"created_by,omitempty"`
	Type            string     `json:"type"`
	CreatedAt       time.Time  `json:"created_at"`
	Vendor          *VendorRef `json:"vendor,omitempty"`
}
