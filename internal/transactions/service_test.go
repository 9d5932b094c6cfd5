package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/jobs"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memRepo struct {
	nextID int64
	txns   map[int64]Transaction
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, txns: make(map[int64]Transaction)}
}

func (m *memRepo) List(ctx context.Context, filter ListFilter) ([]Transaction, error) {
	var out []Transaction
	for _, t := range m.txns {
		if filter.From != nil && t.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && t.Date.After(*filter.To) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memRepo) Get(ctx context.Context, id int64) (Transaction, error) {
	t, ok := m.txns[id]
	if !ok {
		return Transaction{}, httpx.ErrNotFound
	}
	return t, nil
}

func (m *memRepo) Create(ctx context.Context, txn Transaction) (Transaction, error) {
	txn.ID = m.nextID
	m.nextID++
	m.txns[txn.ID] = txn
	return txn, nil
}

func (m *memRepo) Update(ctx context.Context, id int64, txn Transaction) error {
	if _, ok := m.txns[id]; !ok {
		return httpx.ErrNotFound
	}
	txn.ID = id
	m.txns[id] = txn
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) (Transaction, error) {
	t, ok := m.txns[id]
	if !ok {
		return Transaction{}, httpx.ErrNotFound
	}
	delete(m.txns, id)
	return t, nil
}

type memEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (m *memEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.tasks = append(m.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func (m *memEnqueuer) vendorIDs(t *testing.T) []int64 {
	t.Helper()
	var ids []int64
	for _, task := range m.tasks {
		require.Equal(t, jobs.TaskVendorPayablesRefresh, task.Type())
		var payload jobs.VendorPayablesPayload
		require.NoError(t, json.Unmarshal(task.Payload(), &payload))
		ids = append(ids, payload.VendorID)
	}
	return ids
}

func newTestService(t *testing.T) (*Service, *memRepo, *memEnqueuer) {
	t.Helper()
	repo := newMemRepo()
	enq := &memEnqueuer{}
	return NewService(repo, enq, testLogger()), repo, enq
}

func ptr[T any](v T) *T { return &v }

func TestCreateDefaultsToSpend(t *testing.T) {
	svc, repo, _ := newTestService(t)

	txn, err := svc.Create(context.Background(), CreateTransactionRequest{
		Date:     "2025-03-01",
		Amount:   1500,
		Method:   "bank_transfer",
		Category: "materials",
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, TypeSpend, txn.Type)
	require.NotNil(t, txn.CreatedBy)
	assert.Equal(t, int64(7), *txn.CreatedBy)
	assert.Len(t, repo.txns, 1)
}

func TestCreateEnqueuesVendorRefresh(t *testing.T) {
	svc, _, enq := newTestService(t)

	_, err := svc.Create(context.Background(), CreateTransactionRequest{
		Date:     "2025-03-01",
		Amount:   900,
		Method:   "upi",
		Category: "services",
		VendorID: ptr(int64(42)),
		Type:     TypeReceive,
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, []int64{42}, enq.vendorIDs(t))
}

func TestCreateWithoutVendorEnqueuesNothing(t *testing.T) {
	svc, _, enq := newTestService(t)

	_, err := svc.Create(context.Background(), CreateTransactionRequest{
		Date:     "2025-03-01",
		Amount:   100,
		Method:   "cash",
		Category: "misc",
	}, 7)
	require.NoError(t, err)

	assert.Empty(t, enq.tasks)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateTransactionRequest{
		Date:     "01/03/2025",
		Amount:   100,
		Method:   "cash",
		Category: "misc",
	}, 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
}

func TestUpdateMovingVendorRefreshesBothSides(t *testing.T) {
	svc, _, enq := newTestService(t)

	created, err := svc.Create(context.Background(), CreateTransactionRequest{
		Date:     "2025-03-01",
		Amount:   500,
		Method:   "cash",
		Category: "misc",
		VendorID: ptr(int64(1)),
	}, 7)
	require.NoError(t, err)
	enq.tasks = nil

	_, err = svc.Update(context.Background(), created.ID, UpdateTransactionRequest{
		Date:     "2025-03-02",
		Amount:   500,
		Method:   "cash",
		Category: "misc",
		VendorID: ptr(int64(2)),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{1, 2}, enq.vendorIDs(t))
}

func TestDeleteRefreshesVendor(t *testing.T) {
	svc, repo, enq := newTestService(t)

	created, err := svc.Create(context.Background(), CreateTransactionRequest{
		Date:     "2025-03-01",
		Amount:   250,
		Method:   "cash",
		Category: "misc",
		VendorID: ptr(int64(9)),
	}, 7)
	require.NoError(t, err)
	enq.tasks = nil

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.txns)
	assert.Equal(t, []int64{9}, enq.vendorIDs(t))
}

func TestEnqueueFailureDoesNotFailWrite(t *testing.T) {
	repo := newMemRepo()
	enq := &memEnqueuer{err: errors.New("redis down")}
	svc := NewService(repo, enq, testLogger())

	txn, err := svc.Create(context.Background(), CreateTransactionRequest{
		Date:     "2025-03-01",
		Amount:   80,
		Method:   "cash",
		Category: "misc",
		VendorID: ptr(int64(3)),
	}, 7)
	require.NoError(t, err)
	assert.NotZero(t, txn.ID)
}
