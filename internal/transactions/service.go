package transactions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/jobs"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Service struct {
	repo     Repository
	enqueuer Enqueuer
	logger   *slog.Logger
}

func NewService(repo Repository, enqueuer Enqueuer, logger *slog.Logger) *Service {
	return &Service{repo: repo, enqueuer: enqueuer, logger: logger}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Transaction, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (Transaction, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateTransactionRequest, createdBy int64) (Transaction, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return Transaction{}, err
	}
	txn := Transaction{
		ProjectID:       req.ProjectID,
		Date:            date,
		Amount:          req.Amount,
		Method:          req.Method,
		Category:        req.Category,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		VendorID:        req.VendorID,
		CreatedBy:       &createdBy,
		Type:            normalizeType(req.Type),
	}
	created, err := s.repo.Create(ctx, txn)
	if err != nil {
		return Transaction{}, err
	}
	s.refreshPayables(ctx, created.VendorID)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTransactionRequest) (Transaction, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return Transaction{}, err
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Transaction{}, err
	}
	txn := Transaction{
		ProjectID:       req.ProjectID,
		Date:            date,
		Amount:          req.Amount,
		Method:          req.Method,
		Category:        req.Category,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		VendorID:        req.VendorID,
		Type:            normalizeType(req.Type),
	}
	if err := s.repo.Update(ctx, id, txn); err != nil {
		return Transaction{}, err
	}
	// Moving a transaction between vendors leaves both sides stale.
	s.refreshPayables(ctx, current.VendorID)
	if req.VendorID != nil && (current.VendorID == nil || *current.VendorID != *req.VendorID) {
		s.refreshPayables(ctx, req.VendorID)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.refreshPayables(ctx, removed.VendorID)
	return nil
}

// refreshPayables schedules a payables recomputation for the vendor.
// Enqueue failures are logged, not surfaced: the ledger write already
// succeeded and the nightly full refresh will reconcile.
func (s *Service) refreshPayables(ctx context.Context, vendorID *int64) {
	if vendorID == nil || s.enqueuer == nil {
		return
	}
	task, err := jobs.NewVendorPayablesTask(jobs.VendorPayablesPayload{VendorID: *vendorID})
	if err != nil {
		s.logger.Error("payables task build failed", slog.Int64("vendor_id", *vendorID), slog.Any("error", err))
		return
	}
	if _, err := s.enqueuer.EnqueueContext(ctx, task, asynq.Queue(jobs.QueueDefault)); err != nil {
		s.logger.Error("payables task enqueue failed", slog.Int64("vendor_id", *vendorID), slog.Any("error", err))
	}
}

func normalizeType(t string) string {
	if t == "" {
		return TypeSpend
	}
	return t
}

func parseDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: transaction_date must be RFC3339 or YYYY-MM-DD", httpx.ErrValidation)
	}
	return ts, nil
}
