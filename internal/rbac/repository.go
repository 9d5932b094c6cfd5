package rbac

import "context"

// Store abstracts the relational permission store so the resolver and gate
// can be exercised against an in-memory implementation in tests.
type Store interface {
	// FindIdentity loads a user by ID. Returns ErrNotFound when absent.
	FindIdentity(ctx context.Context, userID int64) (*Identity, error)

	// UserPermissions returns the deduplicated permission names granted to
	// the user through role membership. An unknown user or a user with no
	// roles yields an empty slice, never an error.
	UserPermissions(ctx context.Context, userID int64) ([]string, error)

	// ListRolesWithPermissions returns every role with its granted
	// permissions, ordered by role name.
	ListRolesWithPermissions(ctx context.Context) ([]RoleWithPermissions, error)

	// UserRoles returns the roles currently joined to a user.
	UserRoles(ctx context.Context, userID int64) ([]Role, error)

	// ReplaceUserRole atomically removes every role from the user and
	// assigns the given one. Returns ErrNotFound when the role does not
	// exist.
	ReplaceUserRole(ctx context.Context, userID, roleID int64) error
}
