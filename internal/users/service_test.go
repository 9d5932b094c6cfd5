package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/rbac"
)

type memLister struct {
	users    []User
	joins    map[int64][]int64
	usersErr error
}

func (m *memLister) ListUsers(ctx context.Context) ([]User, error) {
	if m.usersErr != nil {
		return nil, m.usersErr
	}
	return m.users, nil
}

func (m *memLister) ListUserRoleIDs(ctx context.Context) (map[int64][]int64, error) {
	return m.joins, nil
}

type memStore struct {
	roles []rbac.RoleWithPermissions
}

func (m *memStore) FindIdentity(ctx context.Context, userID int64) (*rbac.Identity, error) {
	return nil, rbac.ErrNotFound
}

func (m *memStore) UserPermissions(ctx context.Context, userID int64) ([]string, error) {
	return []string{}, nil
}

func (m *memStore) ListRolesWithPermissions(ctx context.Context) ([]rbac.RoleWithPermissions, error) {
	return m.roles, nil
}

func (m *memStore) UserRoles(ctx context.Context, userID int64) ([]rbac.Role, error) {
	return nil, nil
}

func (m *memStore) ReplaceUserRole(ctx context.Context, userID, roleID int64) error {
	return nil
}

func TestListWithRolesJoinsRoleData(t *testing.T) {
	financeViewer := rbac.RoleWithPermissions{
		Role: rbac.Role{ID: 1, Name: "Finance Viewer"},
		Permissions: []rbac.Permission{
			{ID: 1, Name: "financial_view"},
		},
	}
	lister := &memLister{
		users: []User{
			{ID: 10, Username: "asha", IsActive: true},
			{ID: 11, Username: "ravi", IsActive: true},
		},
		joins: map[int64][]int64{10: {1}},
	}
	svc := NewService(lister, rbac.NewService(&memStore{roles: []rbac.RoleWithPermissions{financeViewer}}))

	out, err := svc.ListWithRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Len(t, out[0].Roles, 1)
	assert.Equal(t, "Finance Viewer", out[0].Roles[0].Name)
	// user without an assignment gets an empty slice, not null
	assert.NotNil(t, out[1].Roles)
	assert.Empty(t, out[1].Roles)
}

func TestListWithRolesIgnoresDanglingJoin(t *testing.T) {
	lister := &memLister{
		users: []User{{ID: 10, Username: "asha"}},
		joins: map[int64][]int64{10: {99}},
	}
	svc := NewService(lister, rbac.NewService(&memStore{}))

	out, err := svc.ListWithRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Roles)
}

func TestListWithRolesPropagatesStoreFailure(t *testing.T) {
	lister := &memLister{usersErr: errors.New("connection reset")}
	svc := NewService(lister, rbac.NewService(&memStore{}))

	_, err := svc.ListWithRoles(context.Background())
	assert.Error(t, err)
}
