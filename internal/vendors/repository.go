package vendors

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/internal/shared"
)

type Repository interface {
	List(ctx context.Context, nameSearch string) ([]Vendor, error)
	Get(ctx context.Context, id int64) (Vendor, error)
	Create(ctx context.Context, vendor Vendor) (Vendor, error)
	Update(ctx context.Context, id int64, vendor Vendor) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const vendorColumns = `vendor_id, vendor_name, gst_no, vendor_type, email, phone, address,
	bank_name, bank_account_number, ifsc_code, is_active, created_by, payables, created_at, updated_at`

func (r *repository) List(ctx context.Context, nameSearch string) ([]Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors`
	args := []any{}
	if nameSearch != "" {
		query += ` WHERE vendor_name ILIKE $1`
		args = append(args, "%"+nameSearch+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Vendor, error) {
	row := r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE vendor_id = $1`, id)
	v, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Vendor{}, httpx.ErrNotFound
		}
		return Vendor{}, err
	}
	return v, nil
}

func (r *repository) Create(ctx context.Context, vendor Vendor) (Vendor, error) {
	const query = `INSERT INTO vendors
		(vendor_name, gst_no, vendor_type, email, phone, address, bank_name, bank_account_number,
		 ifsc_code, is_active, created_by, payables, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING vendor_id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		vendor.Name, vendor.GSTNo, vendor.Type, vendor.Email, vendor.Phone, vendor.Address,
		vendor.BankName, vendor.BankAccountNumber, vendor.IFSCCode, vendor.IsActive,
		vendor.CreatedBy, vendor.Payables, now,
	).Scan(&vendor.ID)
	if err != nil {
		return Vendor{}, mapDuplicate(err)
	}
	vendor.CreatedAt = now
	vendor.UpdatedAt = now
	return vendor, nil
}

func (r *repository) Update(ctx context.Context, id int64, vendor Vendor) error {
	const query = `UPDATE vendors SET
		vendor_name = $1, gst_no = $2, vendor_type = $3, email = $4, phone = $5, address = $6,
		bank_name = $7, bank_account_number = $8, ifsc_code = $9, is_active = $10,
		payables = $11, updated_at = $12
		WHERE vendor_id = $13`
	tag, err := r.db.Exec(ctx, query,
		vendor.Name, vendor.GSTNo, vendor.Type, vendor.Email, vendor.Phone, vendor.Address,
		vendor.BankName, vendor.BankAccountNumber, vendor.IFSCCode, vendor.IsActive,
		vendor.Payables, time.Now(), id,
	)
	if err != nil {
		return mapDuplicate(err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func scanVendor(row pgx.Row) (Vendor, error) {
	var v Vendor
	var payables pgtype.Numeric
	err := row.Scan(
		&v.ID, &v.Name, &v.GSTNo, &v.Type, &v.Email, &v.Phone, &v.Address,
		&v.BankName, &v.BankAccountNumber, &v.IFSCCode, &v.IsActive, &v.CreatedBy,
		&payables, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return Vendor{}, err
	}
	v.Payables = shared.NumericFloatPtr(payables)
	return v, nil
}

// mapDuplicate converts a unique constraint violation on vendor name or
// email into the shared duplicate sentinel.
func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httpx.ErrDuplicate
	}
	return err
}
