package invoices

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/ledgerline/internal/platform/db"
	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id int64) (Invoice, error)
	Create(ctx context.Context, inv Invoice) (int64, error)
	Replace(ctx context.Context, id int64, inv Invoice) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const invoiceColumns = `invoice_id, customer_id, customer_name, customer_address, invoice_number,
	invoice_date, due_date, payment_terms, status, memo, discount, shipping_cost,
	subtotal, total_amount, currency, created_at`

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY invoice_date DESC, invoice_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []Invoice
	ids := []int64{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		inv.Items = []InvoiceItem{}
		invoices = append(invoices, inv)
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return invoices, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if lines, ok := items[invoices[i].ID]; ok {
			invoices[i].Items = lines
		}
	}
	return invoices, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_id = $1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Invoice{}, httpx.ErrNotFound
		}
		return Invoice{}, err
	}
	items, err := r.itemsFor(ctx, []int64{id})
	if err != nil {
		return Invoice{}, err
	}
	inv.Items = items[id]
	if inv.Items == nil {
		inv.Items = []InvoiceItem{}
	}
	return inv, nil
}

// Create inserts the invoice header and its items in one transaction.
func (r *repository) Create(ctx context.Context, inv Invoice) (int64, error) {
	var id int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const header = `INSERT INTO invoices
			(customer_id, customer_name, customer_address, invoice_number, invoice_date, due_date,
			 payment_terms, status, memo, discount, shipping_cost, subtotal, total_amount, currency)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING invoice_id`
		if err := tx.QueryRow(ctx, header,
			inv.CustomerID, inv.CustomerName, inv.CustomerAddress, inv.InvoiceNumber,
			inv.InvoiceDate, inv.DueDate, inv.PaymentTerms, inv.Status, inv.Memo,
			inv.Discount, inv.ShippingCost, inv.Subtotal, inv.TotalAmount, inv.Currency,
		).Scan(&id); err != nil {
			return mapDuplicate(err)
		}
		return insertItems(ctx, tx, id, inv.Items)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Replace rewrites the header and swaps all items inside one transaction.
func (r *repository) Replace(ctx context.Context, id int64, inv Invoice) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const header = `UPDATE invoices SET
			customer_id = $1, customer_name = $2, customer_address = $3, invoice_number = $4,
			invoice_date = $5, due_date = $6, payment_terms = $7, status = $8, memo = $9,
			discount = $10, shipping_cost = $11, subtotal = $12, total_amount = $13, currency = $14
			WHERE invoice_id = $15`
		tag, err := tx.Exec(ctx, header,
			inv.CustomerID, inv.CustomerName, inv.CustomerAddress, inv.InvoiceNumber,
			inv.InvoiceDate, inv.DueDate, inv.PaymentTerms, inv.Status, inv.Memo,
			inv.Discount, inv.ShippingCost, inv.Subtotal, inv.TotalAmount, inv.Currency, id,
		)
		if err != nil {
			return mapDuplicate(err)
		}
		if tag.RowsAffected() == 0 {
			return httpx.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
			return err
		}
		return insertItems(ctx, tx, id, inv.Items)
	})
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return httpx.ErrNotFound
		}
		return nil
	})
}

func (r *repository) itemsFor(ctx context.Context, invoiceIDs []int64) (map[int64][]InvoiceItem, error) {
	const query = `SELECT item_id, invoice_id, product_name, description, quantity, rate, amount, total_amount
		FROM invoice_items WHERE invoice_id = ANY($1) ORDER BY item_id`
	rows, err := r.pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]InvoiceItem)
	for rows.Next() {
		var item InvoiceItem
		var quantity, rate, amount, total pgtype.Numeric
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.ProductName, &item.Description,
			&quantity, &rate, &amount, &total); err != nil {
			return nil, err
		}
		item.Quantity = shared.NumericFloat(quantity)
		item.Rate = shared.NumericFloat(rate)
		item.Amount = shared.NumericFloat(amount)
		item.TotalAmount = shared.NumericFloat(total)
		items[item.InvoiceID] = append(items[item.InvoiceID], item)
	}
	return items, rows.Err()
}

func insertItems(ctx context.Context, tx pgx.Tx, invoiceID int64, items []InvoiceItem) error {
	const query = `INSERT INTO invoice_items
		(invoice_id, product_name, description, quantity, rate, amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, item := range items {
		if _, err := tx.Exec(ctx, query,
			invoiceID, item.ProductName, item.Description, item.Quantity,
			item.Rate, item.Amount, item.TotalAmount,
		); err != nil {
			return err
		}
	}
	return nil
}

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	var discount, shipping, subtotal, total pgtype.Numeric
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.CustomerName, &inv.CustomerAddress, &inv.InvoiceNumber,
		&inv.InvoiceDate, &inv.DueDate, &inv.PaymentTerms, &inv.Status, &inv.Memo,
		&discount, &shipping, &subtotal, &total, &inv.Currency, &inv.CreatedAt,
	)
	if err != nil {
		return Invoice{}, err
	}
	inv.Discount = shared.NumericFloat(discount)
	inv.ShippingCost = shared.NumericFloat(shipping)
	inv.Subtotal = shared.NumericFloat(subtotal)
	inv.TotalAmount = shared.NumericFloat(total)
	return inv, nil
}

func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httpx.ErrDuplicate
	}
	return err
}
