package purchaseorders

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

func (s *Service) List(ctx context.Context) ([]PurchaseOrder, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (PurchaseOrder, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (PurchaseOrder, error) {
	po, err := fromRequest(req)
	if err != nil {
		return PurchaseOrder{}, err
	}
	id, err := s.repo.Create(ctx, po)
	if err != nil {
		return PurchaseOrder{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateOrderRequest) (PurchaseOrder, error) {
	po, err := fromRequest(req)
	if err != nil {
		return PurchaseOrder{}, err
	}
	if err := s.repo.Replace(ctx, id, po); err != nil {
		return PurchaseOrder{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func fromRequest(req CreateOrderRequest) (PurchaseOrder, error) {
	orderDate, err := parseOptionalDate(req.OrderDate, "order_date")
	if err != nil {
		return PurchaseOrder{}, err
	}
	expected, err := parseOptionalDate(req.ExpectedDelivery, "expected_delivery")
	if err != nil {
		return PurchaseOrder{}, err
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
	return PurchaseOrder{
		VendorID:         req.VendorID,
		PONumber:         req.PONumber,
		OrderDate:        orderDate,
		ExpectedDelivery: expected,
		BillingAddress:   req.BillingAddress,
		Status:           status,
		Memo:             req.Memo,
		Discount:         req.Discount,
		ShippingCost:     req.ShippingCost,
		Subtotal:         subtotal,
		TotalAmount:      total,
		Currency:         currency,
		Items:            items,
	}, nil
}

func parseOptionalDate(raw *string, field string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, *raw); err == nil {
		return &ts, nil
	}
	ts, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be RFC3339 or YYYY-MM-DD", httpx.ErrValidation, field)
	}
	return &ts, nil
}
