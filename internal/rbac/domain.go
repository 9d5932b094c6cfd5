// Package rbac implements permission resolution and authorization gating.
// Every protected endpoint consults the Gate before touching data.
package rbac

// Identity describes the authenticated actor as stored in the database.
type Identity struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
	IsCEO    bool   `json:"is_ceo"`
}

// Role represents a named bundle of permissions assignable to users.
type Role struct {
	ID          int64  `json:"role_id"`
	Name        string `json:"role_name"`
	Description string `json:"description"`
}

// Permission represents an atomic named capability.
type Permission struct {
	ID   int64  `json:"permission_id"`
	Name string `json:"permission_name"`
}

// RoleWithPermissions pairs a role with the permissions it grants.
type RoleWithPermissions struct {
	Role
	Permissions []Permission `json:"permissions"`
}

// Decision is the outcome of an authorization check. The gate returns data
// only; mapping a reason to an HTTP status is the caller's job.
type Decision struct {
	Allowed  bool
	Reason   string
	Identity *Identity
}

// Deny reasons surfaced on Decision.Reason.
const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonForbidden       = "forbidden"
)
