// Package users implements user administration for superusers.
package users

import (
	"time"

	"github.com/ledgerline/ledgerline/internal/rbac"
)

// User represents a user account for management.
type User struct {
	ID        int64     `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	IsCEO     bool      `json:"is_ceo"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminUser is a user enriched with the roles currently assigned to it.
type AdminUser struct {
	User
	Roles []rbac.RoleWithPermissions `json:"roles"`
}
