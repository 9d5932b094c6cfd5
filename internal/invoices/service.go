package invoices

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Invoice, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error) {
	inv, err := fromRequest(req)
	if err != nil {
		return Invoice{}, err
	}
	id, err := s.repo.Create(ctx, inv)
	if err != nil {
		return Invoice{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (Invoice, error) {
	inv, err := fromRequest(req)
	if err != nil {
		return Invoice{}, err
	}
	if err := s.repo.Replace(ctx, id, inv); err != nil {
		return Invoice{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// fromRequest maps the request onto an Invoice with amounts recomputed
// from quantity and rate.
func fromRequest(req CreateInvoiceRequest) (Invoice, error) {
	invoiceDate, err := parseDate(req.InvoiceDate, "invoice_date")
	if err != nil {
		return Invoice{}, err
	}
	dueDate, err := parseDate(req.DueDate, "due_date")
	if err != nil {
		return Invoice{}, err
	}
	items := buildItems(req.Items)
	subtotal, total := computeTotals(items, req.Discount, req.ShippingCost)

	status := req.Status
	if status == "" {
		status = "draft"
	}
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	return Invoice{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		InvoiceNumber:   req.InvoiceNumber,
		InvoiceDate:     invoiceDate,
		DueDate:         dueDate,
		PaymentTerms:    req.PaymentTerms,
		Status:          status,
		Memo:            req.Memo,
		Discount:        req.Discount,
		ShippingCost:    req.ShippingCost,
		Subtotal:        subtotal,
		TotalAmount:     total,
		Currency:        currency,
		Items:           items,
	}, nil
}

func parseDate(raw, field string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC3339 or YYYY-MM-DD", httpx.ErrValidation, field)
	}
	return ts, nil
}
