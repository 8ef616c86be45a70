package health

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]HealthRecord, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) Create(ctx context.Context, in InsertHealthRecord) (HealthRecord, error) {
	in.Type = strings.TrimSpace(in.Type)
	in.Title = strings.TrimSpace(in.Title)

	if in.PetID <= 0 {
		return HealthRecord{}, ErrInvalidInput
	}
	if in.Type == "" || in.Title == "" {
		return HealthRecord{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return HealthRecord{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, in)
}
