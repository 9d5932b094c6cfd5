package company

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

type memRepo struct {
	row    *Details
	nextID int64
}

func (m *memRepo) First(ctx context.Context) (Details, error) {
	if m.row == nil {
		return Details{}, httpx.ErrNotFound
	}
	return *m.row, nil
}

func (m *memRepo) Create(ctx context.Context, fields UpdateFields) (int64, error) {
	m.nextID++
	row := Details{ID: m.nextID}
	if fields.CompanyName != nil {
		row.CompanyName = *fields.CompanyName
	}
	if fields.IsOwnCompany != nil {
		row.IsOwnCompany = *fields.IsOwnCompany
	}
	row.Address = fields.Address
	row.Email = fields.Email
	row.logoBytes = fields.Logo
	m.row = &row
	return row.ID, nil
}

func (m *memRepo) Update(ctx context.Context, id int64, fields UpdateFields) error {
	if m.row == nil || m.row.ID != id {
		return httpx.ErrNotFound
	}
	if fields.CompanyName != nil {
		m.row.CompanyName = *fields.CompanyName
	}
	if fields.Address != nil {
		m.row.Address = fields.Address
	}
	if fields.Logo != nil {
		m.row.logoBytes = fields.Logo
	}
	return nil
}

func strPtr(v string) *string { return &v }

// pngHeader is enough for content sniffing to call it image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestGetWithoutProfile(t *testing.T) {
	svc := NewService(&memRepo{})

	_, err := svc.Get(context.Background())
	assert.True(t, errors.Is(err, httpx.ErrNotFound))
}

func TestGetRendersLogoAsDataURL(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), UpdateFields{
		CompanyName: strPtr("Ledgerline Traders"),
		Logo:        pngHeader,
	})
	require.NoError(t, err)

	details, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, details.Logo)
	assert.True(t, strings.HasPrefix(*details.Logo, "data:image/png;base64,"))
}

func TestGetWithoutLogo(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), UpdateFields{CompanyName: strPtr("Ledgerline Traders")})
	require.NoError(t, err)

	details, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, details.Logo)
}

func TestUpdateTouchesOnlyProvidedFields(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), UpdateFields{
		CompanyName: strPtr("Ledgerline Traders"),
		Address:     strPtr("14 Harbour Road"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), UpdateFields{Address: strPtr("2 Dockside Lane")})
	require.NoError(t, err)

	assert.Equal(t, "Ledgerline Traders", updated.CompanyName)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "2 Dockside Lane", *updated.Address)
}

func TestUpdateWithoutProfile(t *testing.T) {
	svc := NewService(&memRepo{})

	_, err := svc.Update(context.Background(), UpdateFields{CompanyName: strPtr("Ghost Co")})
	assert.True(t, errors.Is(err, httpx.ErrNotFound))
}
