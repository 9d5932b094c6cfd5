package transactions

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/internal/shared"
)

// ListFilter narrows transaction listings.
type ListFilter struct {
	From *time.Time
	To   *time.Time
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Transaction, error)
	Get(ctx context.Context, id int64) (Transaction, error)
	Create(ctx context.Context, txn Transaction) (Transaction, error)
	Update(ctx context.Context, id int64, txn Transaction) error
	Delete(ctx context.Context, id int64) (Transaction, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const txnColumns = `t.transaction_id, t.project_id, t.transaction_date, t.amount, t.transaction_method,
	t.category, t.description, t.reference_number, t.vendor_id, t.created_by, t.type, t.created_at,
	v.vendor_id, v.vendor_name`

const txnSelect = `SELECT ` + txnColumns + `
	FROM financial_transactions t
	LEFT JOIN vendors v ON v.vendor_id = t.vendor_id`

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Transaction, error) {
	query := txnSelect
	args := []any{}
	where := ""
	if filter.From != nil {
		args = append(args, *filter.From)
		where = ` WHERE t.transaction_date >= $1`
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		if where == "" {
			where = ` WHERE t.transaction_date <= $1`
		} else {
			where += ` AND t.transaction_date <= $2`
		}
	}
	query += where + ` ORDER BY t.transaction_date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Transaction, error) {
	row := r.db.QueryRow(ctx, txnSelect+` WHERE t.transaction_id = $1`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Transaction{}, httpx.ErrNotFound
		}
		return Transaction{}, err
	}
	return t, nil
}

func (r *repository) Create(ctx context.Context, txn Transaction) (Transaction, error) {
	const query = `INSERT INTO financial_transactions
		(project_id, transaction_date, amount, transaction_method, category, description,
		 reference_number, vendor_id, created_by, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING transaction_id, created_at`
	err := r.db.QueryRow(ctx, query,
		txn.ProjectID, txn.Date, txn.Amount, txn.Method, txn.Category, txn.Description,
		txn.ReferenceNumber, txn.VendorID, txn.CreatedBy, txn.Type,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return Transaction{}, err
	}
	return txn, nil
}

func (r *repository) Update(ctx context.Context, id int64, txn Transaction) error {
	const query = `UPDATE financial_transactions SET
		project_id = $1, transaction_date = $2, amount = $3, transaction_method = $4,
		category = $5, description = $6, reference_number = $7, vendor_id = $8, type = $9
		WHERE transaction_id = $10`
	tag, err := r.db.Exec(ctx, query,
		txn.ProjectID, txn.Date, txn.Amount, txn.Method, txn.Category, txn.Description,
		txn.ReferenceNumber, txn.VendorID, txn.Type, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// Delete returns the removed transaction so the caller can refresh the
// affected vendor's payables.
func (r *repository) Delete(ctx context.Context, id int64) (Transaction, error) {
	txn, err := r.Get(ctx, id)
	if err != nil {
		return Transaction{}, err
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM financial_transactions WHERE transaction_id = $1`, id); err != nil {
		return Transaction{}, err
	}
	return txn, nil
}

func scanTransaction(row pgx.Row) (Transaction, error) {
	var t Transaction
	var amount pgtype.Numeric
	var vendorID *int64
	var vendorName *string
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Date, &amount, &t.Method,
		&t.Category, &t.Description, &t.ReferenceNumber, &t.VendorID, &t.CreatedBy, &t.Type, &t.CreatedAt,
		&vendorID, &vendorName,
	)
	if err != nil {
		return Transaction{}, err
	}
	t.Amount = shared.NumericFloat(amount)
	if vendorID != nil && vendorName != nil {
		t.Vendor = &VendorRef{ID: *vendorID, Name: *vendorName}
	}
	return t, nil
}
