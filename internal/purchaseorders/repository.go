package purchaseorders

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
	List(ctx context.Context) ([]PurchaseOrder, error)
	Get(ctx context.Context, id int64) (PurchaseOrder, error)
	Create(ctx context.Context, po PurchaseOrder) (int64, error)
	Replace(ctx context.Context, id int64, po PurchaseOrder) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const orderSelect = `SELECT po.po_id, po.vendor_id, v.vendor_name, po.po_number, po.order_date,
	po.expected_delivery, po.billing_address, po.status, po.memo, po.discount, po.shipping_cost,
	po.subtotal, po.total_amount, po.currency, po.created_at
	FROM purchase_orders po
	LEFT JOIN vendors v ON v.vendor_id = po.vendor_id`

func (r *repository) List(ctx context.Context) ([]PurchaseOrder, error) {
	rows, err := r.pool.Query(ctx, orderSelect+` ORDER BY po.created_at DESC, po.po_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []PurchaseOrder
	ids := []int64{}
	for rows.Next() {
		po, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		po.Items = []OrderItem{}
		orders = append(orders, po)
		ids = append(ids, po.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if lines, ok := items[orders[i].ID]; ok {
			orders[i].Items = lines
		}
	}
	return orders, nil
}

func (r *repository) Get(ctx context.Context, id int64) (PurchaseOrder, error) {
	row := r.pool.QueryRow(ctx, orderSelect+` WHERE po.po_id = $1`, id)
	po, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PurchaseOrder{}, httpx.ErrNotFound
		}
		return PurchaseOrder{}, err
	}
	items, err := r.itemsFor(ctx, []int64{id})
	if err != nil {
		return PurchaseOrder{}, err
	}
	po.Items = items[id]
	if po.Items == nil {
		po.Items = []OrderItem{}
	}
	return po, nil
}

// Create inserts the header and its items in one transaction.
func (r *repository) Create(ctx context.Context, po PurchaseOrder) (int64, error) {
	var id int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const header = `INSERT INTO purchase_orders
			(vendor_id, po_number, order_date, expected_delivery, billing_address, status, memo,
			 discount, shipping_cost, subtotal, total_amount, currency)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING po_id`
		if err := tx.QueryRow(ctx, header,
			po.VendorID, po.PONumber, po.OrderDate, po.ExpectedDelivery, po.BillingAddress,
			po.Status, po.Memo, po.Discount, po.ShippingCost, po.Subtotal, po.TotalAmount, po.Currency,
		).Scan(&id); err != nil {
			return mapDuplicate(err)
		}
		return insertItems(ctx, tx, id, po.Items)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Replace rewrites the header and swaps all items inside one transaction.
func (r *repository) Replace(ctx context.Context, id int64, po PurchaseOrder) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const header = `UPDATE purchase_orders SET
			vendor_id = $1, po_number = $2, order_date = $3, expected_delivery = $4,
			billing_address = $5, status = $6, memo = $7, discount = $8, shipping_cost = $9,
			subtotal = $10, total_amount = $11, currency = $12
			WHERE po_id = $13`
		tag, err := tx.Exec(ctx, header,
			po.VendorID, po.PONumber, po.OrderDate, po.ExpectedDelivery, po.BillingAddress,
			po.Status, po.Memo, po.Discount, po.ShippingCost, po.Subtotal, po.TotalAmount, po.Currency, id,
		)
		if err != nil {
			return mapDuplicate(err)
		}
		if tag.RowsAffected() == 0 {
			return httpx.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM purchase_order_items WHERE po_id = $1`, id); err != nil {
			return err
		}
		return insertItems(ctx, tx, id, po.Items)
	})
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM purchase_order_items WHERE po_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM purchase_orders WHERE po_id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return httpx.ErrNotFound
		}
		return nil
	})
}

func (r *repository) itemsFor(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error) {
	const query = `SELECT item_id, po_id, product_name, description, quantity, rate, tax_rate, amount, total_amount
		FROM purchase_order_items WHERE po_id = ANY($1) ORDER BY item_id`
	rows, err := r.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]OrderItem)
	for rows.Next() {
		var item OrderItem
		var quantity, rate, taxRate, amount, total pgtype.Numeric
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductName, &item.Description,
			&quantity, &rate, &taxRate, &amount, &total); err != nil {
			return nil, err
		}
		item.Quantity = shared.NumericFloat(quantity)
		item.Rate = shared.NumericFloat(rate)
		item.TaxRate = shared.NumericFloat(taxRate)
		item.Amount = shared.NumericFloat(amount)
		item.TotalAmount = shared.NumericFloat(total)
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []OrderItem) error {
	const query = `INSERT INTO purchase_order_items
		(po_id, product_name, description, quantity, rate, tax_rate, amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, item := range items {
		if _, err := tx.Exec(ctx, query,
			orderID, item.ProductName, item.Description, item.Quantity,
			item.Rate, item.TaxRate, item.Amount, item.TotalAmount,
		); err != nil {
			return err
		}
	}
	return nil
}

func scanOrder(row pgx.Row) (PurchaseOrder, error) {
	var po PurchaseOrder
	var discount, shipping, subtotal, total pgtype.Numeric
	err := row.Scan(
		&po.ID, &po.VendorID, &po.VendorName, &po.PONumber, &po.OrderDate,
		&po.ExpectedDelivery, &po.BillingAddress, &po.Status, &po.Memo,
		&discount, &shipping, &subtotal, &total, &po.Currency, &po.CreatedAt,
	)
	if err != nil {
		return PurchaseOrder{}, err
	}
	po.Discount = shared.NumericFloat(discount)
	po.ShippingCost = shared.NumericFloat(shipping)
	po.Subtotal = shared.NumericFloat(subtotal)
	po.TotalAmount = shared.NumericFloat(total)
	return po, nil
}

func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httpx.ErrDuplicate
	}
	return err
}
