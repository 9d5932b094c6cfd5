package invoices

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

type memRepo struct {
	nextID   int64
	invoices map[int64]Invoice
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, invoices: make(map[int64]Invoice)}
}

func (m *memRepo) List(ctx context.Context) ([]Invoice, error) {
	var out []Invoice
	for _, inv := range m.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (m *memRepo) Get(ctx context.Context, id int64) (Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok {
		return Invoice{}, httpx.ErrNotFound
	}
	return inv, nil
}

func (m *memRepo) Create(ctx context.Context, inv Invoice) (int64, error) {
	for _, existing := range m.invoices {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return 0, httpx.ErrDuplicate
		}
	}
	inv.ID = m.nextID
	m.nextID++
	m.invoices[inv.ID] = inv
	return inv.ID, nil
}

func (m *memRepo) Replace(ctx context.Context, id int64, inv Invoice) error {
	if _, ok := m.invoices[id]; !ok {
		return httpx.ErrNotFound
	}
	inv.ID = id
	m.invoices[id] = inv
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.invoices[id]; !ok {
		return httpx.ErrNotFound
	}
	delete(m.invoices, id)
	return nil
}

func validRequest() CreateInvoiceRequest {
	return CreateInvoiceRequest{
		CustomerName:  "Nimbus Constructions",
		InvoiceNumber: "INV-2025-0042",
		InvoiceDate:   "2025-03-01",
		DueDate:       "2025-03-31",
		Items: []InvoiceItemInput{
			{ProductName: "Cement bags", Quantity: 10, Rate: 425.50},
			{ProductName: "Steel rods", Quantity: 3, Rate: 1200},
		},
	}
}

func TestCreateRecomputesTotals(t *testing.T) {
	svc := NewService(newMemRepo())

	inv, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 7855.0, inv.Subtotal)
	assert.Equal(t, 7855.0, inv.TotalAmount)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, 4255.0, inv.Items[0].Amount)
}

func TestCreateAppliesDiscountAndShipping(t *testing.T) {
	svc := NewService(newMemRepo())

	req := validRequest()
	req.Discount = 355
	req.ShippingCost = 500

	inv, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 7855.0, inv.Subtotal)
	assert.Equal(t, 8000.0, inv.TotalAmount)
}

func TestCreateDefaultsStatusAndCurrency(t *testing.T) {
	svc := NewService(newMemRepo())

	inv, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "draft", inv.Status)
	assert.Equal(t, "INR", inv.Currency)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := NewService(newMemRepo())

	req := validRequest()
	req.DueDate = "31-03-2025"

	_, err := svc.Create(context.Background(), req)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
}

func TestCreateDuplicateNumber(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest())
	assert.True(t, errors.Is(err, httpx.ErrDuplicate))
}

func TestUpdateReplacesItems(t *testing.T) {
	svc := NewService(newMemRepo())

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Items = []InvoiceItemInput{{ProductName: "Bricks", Quantity: 100, Rate: 8}}

	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Bricks", updated.Items[0].ProductName)
	assert.Equal(t, 800.0, updated.Subtotal)
}

func TestUpdateUnknownInvoice(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Update(context.Background(), 99, validRequest())
	assert.True(t, errors.Is(err, httpx.ErrNotFound))
}

func TestSummaryFormatsAmounts(t *testing.T) {
	svc := NewService(newMemRepo())

	req := validRequest()
	req.Items = []InvoiceItemInput{{ProductName: "Turbine", Quantity: 1, Rate: 1234567.89}}

	inv, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	summary := BuildSummary(inv)
	assert.Equal(t, "INV-2025-0042", summary.InvoiceNumber)
	assert.Equal(t, "01 Mar 2025", summary.InvoiceDate)
	// en-IN digit grouping: 12,34,567.89
	assert.Equal(t, "INR 12,34,567.89", summary.Total)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "INR 12,34,567.89", summary.Lines[0].Amount)
}
