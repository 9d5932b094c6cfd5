package vendors

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, nameSearch string) ([]Vendor, error) {
	return s.repo.List(ctx, nameSearch)
}

func (s *Service) Get(ctx context.Context, id int64) (Vendor, error) {
	if id <= 0 {
		return Vendor{}, fmt.Errorf("%w: invalid vendor ID", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateVendorRequest, createdBy int64) (Vendor, error) {
	vendor := Vendor{
		Name:              req.Name,
		GSTNo:             req.GSTNo,
		Type:              req.Type,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		IFSCCode:          req.IFSCCode,
		IsActive:          true,
		Payables:          req.Payables,
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}
	if createdBy > 0 {
		vendor.CreatedBy = &createdBy
	}
	return s.repo.Create(ctx, vendor)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateVendorRequest) (Vendor, error) {
	if id <= 0 {
		return Vendor{}, fmt.Errorf("%w: invalid vendor ID", httpx.ErrValidation)
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Vendor{}, err
	}

	current.Name = req.Name
	current.GSTNo = req.GSTNo
	current.Type = req.Type
	current.Email = req.Email
	current.Phone = req.Phone
	current.Address = req.Address
	current.BankName = req.BankName
	current.BankAccountNumber = req.BankAccountNumber
	current.IFSCCode = req.IFSCCode
	current.Payables = req.Payables
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, id, current); err != nil {
		return Vendor{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid vendor ID", httpx.ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}
