// Package auth implements credential verification and account registration.
package auth

import "time"

// User represents a stored account with credentials.
type User struct {
	ID           int64
	Username     string
	FullName     string
	Email        string
	PasswordHash string
	IsActive     bool
	IsCEO        bool
	CreatedAt    time.Time
}
