package users

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ledgerline/ledgerline/internal/rbac"
)

// Lister abstracts user persistence for the admin listing.
type Lister interface {
	ListUsers(ctx context.Context) ([]User, error)
	ListUserRoleIDs(ctx context.Context) (map[int64][]int64, error)
}

// Service assembles user administration views on top of the permission
// store.
type Service struct {
	repo Lister
	rbac *rbac.Service
}

// NewService constructs a Service.
func NewService(repo Lister, rbacService *rbac.Service) *Service {
	return &Service{repo: repo, rbac: rbacService}
}

// ListWithRoles returns every user with the roles (and their permissions)
// currently assigned. The three queries are independent and run
// concurrently.
func (s *Service) ListWithRoles(ctx context.Context) ([]AdminUser, error) {
	var (
		users []User
		joins map[int64][]int64
		roles []rbac.RoleWithPermissions
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.repo.ListUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		joins, err = s.repo.ListUserRoleIDs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		roles, err = s.rbac.RolesWithPermissions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	roleByID := make(map[int64]rbac.RoleWithPermissions, len(roles))
	for _, r := range roles {
		roleByID[r.ID] = r
	}

	out := make([]AdminUser, 0, len(users))
	for _, u := range users {
		admin := AdminUser{User: u, Roles: []rbac.RoleWithPermissions{}}
		for _, roleID := range joins[u.ID] {
			if role, ok := roleByID[roleID]; ok {
				admin.Roles = append(admin.Roles, role)
			}
		}
		out = append(out, admin)
	}
	return out, nil
}

// AssignRole replaces the user's role assignment with the given role.
func (s *Service) AssignRole(ctx context.Context, userID, roleID int64) error {
	return s.rbac.AssignRole(ctx, userID, roleID)
}
