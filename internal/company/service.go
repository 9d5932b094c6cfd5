package company

import (
	"context"
	"encoding/base64"
	"net/http"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the profile with the logo rendered as a data URL.
func (s *Service) Get(ctx context.Context) (Details, error) {
	d, err := s.repo.First(ctx)
	if err != nil {
		return Details{}, err
	}
	if len(d.logoBytes) > 0 {
		url := dataURL(d.logoBytes)
		d.Logo = &url
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, fields UpdateFields) (Details, error) {
	if _, err := s.repo.Create(ctx, fields); err != nil {
		return Details{}, err
	}
	return s.Get(ctx)
}

func (s *Service) Update(ctx context.Context, fields UpdateFields) (Details, error) {
	current, err := s.repo.First(ctx)
	if err != nil {
		return Details{}, err
	}
	if err := s.repo.Update(ctx, current.ID, fields); err != nil {
		return Details{}, err
	}
	return s.Get(ctx)
}

func dataURL(logo []byte) string {
	mime := http.DetectContentType(logo)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(logo)
}
