package rbac_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/rbac"
	"github.com/ledgerline/ledgerline/internal/shared"
)

type memStore struct {
	identities map[int64]*rbac.Identity
	roles      map[int64]rbac.RoleWithPermissions
	userRoles  map[int64][]int64

	permissionsErr error
}

func newMemStore() *memStore {
	return &memStore{
		identities: make(map[int64]*rbac.Identity),
		roles:      make(map[int64]rbac.RoleWithPermissions),
		userRoles:  make(map[int64][]int64),
	}
}

func (m *memStore) FindIdentity(ctx context.Context, userID int64) (*rbac.Identity, error) {
	id, ok := m.identities[userID]
	if !ok {
		return nil, rbac.ErrNotFound
	}
	return id, nil
}

func (m *memStore) UserPermissions(ctx context.Context, userID int64) ([]string, error) {
	if m.permissionsErr != nil {
		return nil, m.permissionsErr
	}
	seen := make(map[string]struct{})
	perms := []string{}
	for _, roleID := range m.userRoles[userID] {
		role, ok := m.roles[roleID]
		if !ok {
			continue
		}
		for _, p := range role.Permissions {
			if _, dup := seen[p.Name]; dup {
				continue
			}
			seen[p.Name] = struct{}{}
			perms = append(perms, p.Name)
		}
	}
	return perms, nil
}

func (m *memStore) ListRolesWithPermissions(ctx context.Context) ([]rbac.RoleWithPermissions, error) {
	out := make([]rbac.RoleWithPermissions, 0, len(m.roles))
	for _, r := range m.roles {
		out = append(out, r)
	}
	return out, nil
}

func (m *memStore) UserRoles(ctx context.Context, userID int64) ([]rbac.Role, error) {
	var out []rbac.Role
	for _, roleID := range m.userRoles[userID] {
		if r, ok := m.roles[roleID]; ok {
			out = append(out, r.Role)
		}
	}
	return out, nil
}

func (m *memStore) ReplaceUserRole(ctx context.Context, userID, roleID int64) error {
	if _, ok := m.roles[roleID]; !ok {
		return rbac.ErrNotFound
	}
	m.userRoles[userID] = []int64{roleID}
	return nil
}

func (m *memStore) addRole(id int64, name string, perms ...string) {
	role := rbac.RoleWithPermissions{Role: rbac.Role{ID: id, Name: name}}
	for i, p := range perms {
		role.Permissions = append(role.Permissions, rbac.Permission{ID: id*100 + int64(i), Name: p})
	}
	m.roles[id] = role
}

func sessionContext(t *testing.T, userID string) context.Context {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	manager := shared.NewSessionManager(client, "test_session", "secret", time.Hour, false)
	req := httptest.NewRequest("GET", "/", nil)
	sess, err := manager.Load(context.Background(), req)
	require.NoError(t, err)
	if userID != "" {
		sess.SetUser(userID)
	}
	return shared.ContextWithSession(context.Background(), sess)
}

func newGate(store rbac.Store) *rbac.Gate {
	return rbac.NewGate(rbac.NewService(store))
}

func TestAuthorizeNoSession(t *testing.T) {
	gate := newGate(newMemStore())

	decision, err := gate.Authorize(context.Background(), shared.PermVendorView)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, rbac.ReasonUnauthenticated, decision.Reason)
}

func TestAuthorizeAnonymousSession(t *testing.T) {
	gate := newGate(newMemStore())

	decision, err := gate.Authorize(sessionContext(t, ""), shared.PermVendorView)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, rbac.ReasonUnauthenticated, decision.Reason)
}

func TestAuthorizeSuperuserBypassesRoles(t *testing.T) {
	store := newMemStore()
	store.identities[7] = &rbac.Identity{ID: 7, Email: "ceo@test.local", IsActive: true, IsCEO: true}
	// No roles assigned at all, and the resolver would fail if consulted.
	store.permissionsErr = assert.AnError
	gate := newGate(store)
	ctx := sessionContext(t, "7")

	for _, perm := range append(shared.AllPermissions(), "anything_not_defined", "mis spelled") {
		decision, err := gate.Authorize(ctx, perm)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "superuser must be allowed %q", perm)
		require.NotNil(t, decision.Identity)
		assert.True(t, decision.Identity.IsCEO)
	}
}

func TestAuthorizeGrantedAndMissingPermission(t *testing.T) {
	store := newMemStore()
	store.identities[3] = &rbac.Identity{ID: 3, Email: "viewer@test.local", IsActive: true}
	store.addRole(1, "Finance Viewer", shared.PermFinancialView)
	store.userRoles[3] = []int64{1}
	gate := newGate(store)
	ctx := sessionContext(t, "3")

	allowed, err := gate.Authorize(ctx, shared.PermFinancialView)
	require.NoError(t, err)
	assert.True(t, allowed.Allowed)

	denied, err := gate.Authorize(ctx, shared.PermFinancialEdit)
	require.NoError(t, err)
	assert.False(t, denied.Allowed)
	assert.Equal(t, rbac.ReasonForbidden, denied.Reason)
}

func TestAuthorizeUnknownUserForbidden(t *testing.T) {
	gate := newGate(newMemStore())

	decision, err := gate.Authorize(sessionContext(t, "99"), shared.PermVendorView)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, rbac.ReasonForbidden, decision.Reason)
}

func TestAuthorizeInactiveUserForbidden(t *testing.T) {
	store := newMemStore()
	store.identities[4] = &rbac.Identity{ID: 4, Email: "gone@test.local", IsActive: false}
	store.addRole(1, "Finance Viewer", shared.PermFinancialView)
	store.userRoles[4] = []int64{1}
	gate := newGate(store)

	decision, err := gate.Authorize(sessionContext(t, "4"), shared.PermFinancialView)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, rbac.ReasonForbidden, decision.Reason)
}

func TestAuthorizeStoreFailurePropagates(t *testing.T) {
	store := newMemStore()
	store.identities[5] = &rbac.Identity{ID: 5, Email: "user@test.local", IsActive: true}
	store.permissionsErr = assert.AnError
	gate := newGate(store)

	_, err := gate.Authorize(sessionContext(t, "5"), shared.PermVendorView)
	require.Error(t, err)
}
