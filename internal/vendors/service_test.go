package vendors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

type memRepo struct {
	nextID  int64
	vendors map[int64]Vendor
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, vendors: make(map[int64]Vendor)}
}

func (m *memRepo) List(ctx context.Context, nameSearch string) ([]Vendor, error) {
	var out []Vendor
	for _, v := range m.vendors {
		out = append(out, v)
	}
	return out, nil
}

func (m *memRepo) Get(ctx context.Context, id int64) (Vendor, error) {
	v, ok := m.vendors[id]
	if !ok {
		return Vendor{}, httpx.ErrNotFound
	}
	return v, nil
}

func (m *memRepo) Create(ctx context.Context, vendor Vendor) (Vendor, error) {
	for _, existing := range m.vendors {
		if existing.Name == vendor.Name {
			return Vendor{}, httpx.ErrDuplicate
		}
	}
	vendor.ID = m.nextID
	m.nextID++
	m.vendors[vendor.ID] = vendor
	return vendor, nil
}

func (m *memRepo) Update(ctx context.Context, id int64, vendor Vendor) error {
	if _, ok := m.vendors[id]; !ok {
		return httpx.ErrNotFound
	}
	vendor.ID = id
	m.vendors[id] = vendor
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.vendors[id]; !ok {
		return httpx.ErrNotFound
	}
	delete(m.vendors, id)
	return nil
}

func boolPtr(v bool) *bool { return &v }

func TestCreateDefaultsToActive(t *testing.T) {
	svc := NewService(newMemRepo())

	vendor, err := svc.Create(context.Background(), CreateVendorRequest{Name: "Acme Traders"}, 5)
	require.NoError(t, err)

	assert.True(t, vendor.IsActive)
	require.NotNil(t, vendor.CreatedBy)
	assert.Equal(t, int64(5), *vendor.CreatedBy)
}

func TestCreateHonoursExplicitInactive(t *testing.T) {
	svc := NewService(newMemRepo())

	vendor, err := svc.Create(context.Background(), CreateVendorRequest{
		Name:     "Dormant Supplies",
		IsActive: boolPtr(false),
	}, 5)
	require.NoError(t, err)

	assert.False(t, vendor.IsActive)
}

func TestCreateDuplicateName(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Create(context.Background(), CreateVendorRequest{Name: "Acme Traders"}, 5)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateVendorRequest{Name: "Acme Traders"}, 5)
	assert.True(t, errors.Is(err, httpx.ErrDuplicate))
}

func TestUpdateReplacesFields(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateVendorRequest{Name: "Acme Traders"}, 5)
	require.NoError(t, err)

	gst := "29ABCDE1234F1Z5"
	updated, err := svc.Update(context.Background(), created.ID, UpdateVendorRequest{
		Name:  "Acme Trading Co",
		GSTNo: &gst,
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Trading Co", updated.Name)
	require.NotNil(t, updated.GSTNo)
	assert.Equal(t, gst, *updated.GSTNo)
	// created_by survives field replacement
	require.NotNil(t, updated.CreatedBy)
	assert.Equal(t, int64(5), *updated.CreatedBy)
}

func TestUpdateUnknownVendor(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Update(context.Background(), 99, UpdateVendorRequest{Name: "Ghost"})
	assert.True(t, errors.Is(err, httpx.ErrNotFound))
}

func TestGetRejectsNonPositiveID(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.Get(context.Background(), 0)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
}

func TestDeleteRemovesVendor(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateVendorRequest{Name: "Acme Traders"}, 5)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.vendors)
}
