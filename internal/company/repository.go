package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

type Repository interface {
	// First returns the single company row, httpx.ErrNotFound when absent.
	First(ctx context.Context) (Details, error)
	Create(ctx context.Context, fields UpdateFields) (int64, error)
	Update(ctx context.Context, id int64, fields UpdateFields) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) First(ctx context.Context) (Details, error) {
	const query = `SELECT id, company_name, address, city, state, pin_code, country, phone, email,
		gst_no, registration_number, is_own_company, logo, updated_at
		FROM company_details ORDER BY id LIMIT 1`
	var d Details
	err := r.pool.QueryRow(ctx, query).Scan(
		&d.ID, &d.CompanyName, &d.Address, &d.City, &d.State, &d.PinCode, &d.Country,
		&d.Phone, &d.Email, &d.GSTNo, &d.RegistrationNumber, &d.IsOwnCompany,
		&d.logoBytes, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Details{}, httpx.ErrNotFound
		}
		return Details{}, err
	}
	return d, nil
}

func (r *repository) Create(ctx context.Context, fields UpdateFields) (int64, error) {
	const query = `INSERT INTO company_details
		(company_name, address, city, state, pin_code, country, phone, email,
		 gst_no, registration_number, is_own_company, logo, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id`
	name := ""
	if fields.CompanyName != nil {
		name = *fields.CompanyName
	}
	isOwn := false
	if fields.IsOwnCompany != nil {
		isOwn = *fields.IsOwnCompany
	}
	var id int64
	err := r.pool.QueryRow(ctx, query,
		name, fields.Address, fields.City, fields.State, fields.PinCode, fields.Country,
		fields.Phone, fields.Email, fields.GSTNo, fields.RegistrationNumber, isOwn, fields.Logo,
	).Scan(&id)
	return id, err
}

// Update writes only the provided fields.
func (r *repository) Update(ctx context.Context, id int64, fields UpdateFields) error {
	query := `UPDATE company_details SET updated_at = NOW()`
	args := []any{}
	pos := 1
	add := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, pos)
		args = append(args, value)
		pos++
	}
	if fields.CompanyName != nil {
		add("company_name", *fields.CompanyName)
	}
	if fields.Address != nil {
		add("address", *fields.Address)
	}
	if fields.City != nil {
		add("city", *fields.City)
	}
	if fields.State != nil {
		add("state", *fields.State)
	}
	if fields.PinCode != nil {
		add("pin_code", *fields.PinCode)
	}
	if fields.Country != nil {
		add("country", *fields.Country)
	}
	if fields.Phone != nil {
		add("phone", *fields.Phone)
	}
	if fields.Email != nil {
		add("email", *fields.Email)
	}
	if fields.GSTNo != nil {
		add("gst_no", *fields.GSTNo)
	}
	if fields.RegistrationNumber != nil {
		add("registration_number", *fields.RegistrationNumber)
	}
	if fields.IsOwnCompany != nil {
		add("is_own_company", *fields.IsOwnCompany)
	}
	if fields.Logo != nil {
		add("logo", fields.Logo)
	}

	query += fmt.Sprintf(" WHERE id = $%d", pos)
	args = append(args, id)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}
