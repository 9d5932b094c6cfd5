package rbac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/rbac"
	"github.com/ledgerline/ledgerline/internal/shared"
)

func TestEffectivePermissionsNoRoles(t *testing.T) {
	store := newMemStore()
	store.identities[1] = &rbac.Identity{ID: 1, Email: "noroles@test.local", IsActive: true}
	service := rbac.NewService(store)

	perms, err := service.EffectivePermissions(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, perms)
}

func TestEffectivePermissionsUnknownUser(t *testing.T) {
	service := rbac.NewService(newMemStore())

	perms, err := service.EffectivePermissions(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, perms)
}

func TestEffectivePermissionsUnionAcrossRoles(t *testing.T) {
	store := newMemStore()
	store.addRole(1, "Finance Viewer", shared.PermFinancialView, shared.PermPaymentView)
	store.addRole(2, "Vendor Editor", shared.PermVendorView, shared.PermVendorEdit, shared.PermPaymentView)
	store.userRoles[9] = []int64{1, 2}
	service := rbac.NewService(store)

	perms, err := service.EffectivePermissions(context.Background(), 9)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		shared.PermFinancialView,
		shared.PermPaymentView,
		shared.PermVendorView,
		shared.PermVendorEdit,
	}, perms)
}

func TestAssignRoleReplacesPreviousRole(t *testing.T) {
	store := newMemStore()
	store.addRole(1, "Role A", "perm_x")
	store.addRole(2, "Role B", "perm_y")
	store.userRoles[5] = []int64{1}
	service := rbac.NewService(store)

	require.NoError(t, service.AssignRole(context.Background(), 5, 2))

	perms, err := service.EffectivePermissions(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"perm_y"}, perms)
}

func TestAssignRoleIdempotent(t *testing.T) {
	store := newMemStore()
	store.addRole(2, "Role B", "perm_y")
	service := rbac.NewService(store)

	require.NoError(t, service.AssignRole(context.Background(), 5, 2))
	require.NoError(t, service.AssignRole(context.Background(), 5, 2))

	perms, err := service.EffectivePermissions(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"perm_y"}, perms)
}

func TestAssignRoleUnknownRole(t *testing.T) {
	service := rbac.NewService(newMemStore())

	err := service.AssignRole(context.Background(), 5, 404)
	assert.ErrorIs(t, err, rbac.ErrNotFound)
}
