package rbac

import "context"

// Service orchestrates permission resolution and role assignment.
type Service struct {
	store Store
}

// NewService constructs a Service backed by the provided store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// EffectivePermissions returns the flattened, deduplicated permission names
// a user currently holds through role membership. An identity that does
// not resolve to a stored user yields an empty set, not an error: callers
// must treat "empty set" as "no permissions", not as "unknown user". Every
// call re-queries the store; there is no caching to invalidate.
func (s *Service) EffectivePermissions(ctx context.Context, userID int64) ([]string, error) {
	perms, err := s.store.UserPermissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(perms))
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

// RolesWithPermissions returns every role with its granted permissions.
func (s *Service) RolesWithPermissions(ctx context.Context) ([]RoleWithPermissions, error) {
	return s.store.ListRolesWithPermissions(ctx)
}

// UserRoles returns the roles currently joined to a user.
func (s *Service) UserRoles(ctx context.Context, userID int64) ([]Role, error) {
	return s.store.UserRoles(ctx, userID)
}

// AssignRole gives the user exactly the named role. The previous
// assignment, whatever it was, is replaced wholesale: after AssignRole
// returns, EffectivePermissions reflects the new role's permission set and
// nothing else.
func (s *Service) AssignRole(ctx context.Context, userID, roleID int64) error {
	return s.store.ReplaceUserRole(ctx, userID, roleID)
}

// FindIdentity loads a user identity by ID.
func (s *Service) FindIdentity(ctx context.Context, userID int64) (*Identity, error) {
	return s.store.FindIdentity(ctx, userID)
}
