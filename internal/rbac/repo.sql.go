package rbac

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/ledgerline/internal/platform/db"
)

// ErrNotFound indicates that the requested record does not exist.
var ErrNotFound = errors.New("rbac: not found")

// PgStore provides PostgreSQL backed persistence for the permission store.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore constructs a store backed by the provided pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// FindIdentity loads a user by ID.
func (s *PgStore) FindIdentity(ctx context.Context, userID int64) (*Identity, error) {
	const query = `SELECT user_id, username, full_name, email, is_active, is_ceo FROM users WHERE user_id = $1`
	var id Identity
	err := s.pool.QueryRow(ctx, query, userID).Scan(&id.ID, &id.Username, &id.FullName, &id.Email, &id.IsActive, &id.IsCEO)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &id, nil
}

// UserPermissions flattens user_roles -> role_permissions -> permissions
// into a deduplicated set of permission names. Zero rows is a valid result.
func (s *PgStore) UserPermissions(ctx context.Context, userID int64) ([]string, error) {
	const query = `
		SELECT DISTINCT p.permission_name
		FROM user_roles ur
		JOIN role_permissions rp ON rp.role_id = ur.role_id
		JOIN permissions p ON p.permission_id = rp.permission_id
		WHERE ur.user_id = $1
		ORDER BY p.permission_name`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		perms = append(perms, name)
	}
	return perms, rows.Err()
}

// ListRolesWithPermissions returns every role joined with its permissions.
func (s *PgStore) ListRolesWithPermissions(ctx context.Context) ([]RoleWithPermissions, error) {
	rows, err := s.pool.Query(ctx, `SELECT role_id, role_name, description FROM roles ORDER BY role_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []RoleWithPermissions
	index := make(map[int64]int)
	for rows.Next() {
		var r RoleWithPermissions
		if err := rows.Scan(&r.ID, &r.Name, &r.Description); err != nil {
			return nil, err
		}
		r.Permissions = []Permission{}
		index[r.ID] = len(roles)
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	permRows, err := s.pool.Query(ctx, `
		SELECT rp.role_id, p.permission_id, p.permission_name
		FROM role_permissions rp
		JOIN permissions p ON p.permission_id = rp.permission_id
		ORDER BY p.permission_name`)
	if err != nil {
		return nil, err
	}
	defer permRows.Close()

	for permRows.Next() {
		var roleID int64
		var p Permission
		if err := permRows.Scan(&roleID, &p.ID, &p.Name); err != nil {
			return nil, err
		}
		if i, ok := index[roleID]; ok {
			roles[i].Permissions = append(roles[i].Permissions, p)
		}
	}
	return roles, permRows.Err()
}

// UserRoles returns the roles currently joined to a user.
func (s *PgStore) UserRoles(ctx context.Context, userID int64) ([]Role, error) {
	const query = `
		SELECT r.role_id, r.role_name, r.description
		FROM user_roles ur
		JOIN roles r ON r.role_id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY r.role_name`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var r Role
		if err := rows.Scan(&r.ID, &r.Name, &r.Description); err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

// ReplaceUserRole removes every role from the user and assigns the given
// one inside a single transaction, so a concurrent permission check never
// observes the empty intermediate state.
func (s *PgStore) ReplaceUserRole(ctx context.Context, userID, roleID int64) error {
	return db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE role_id = $1)`, roleID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, userID, roleID)
		return err
	})
}
