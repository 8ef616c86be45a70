package activities

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]CareActivity, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id int64) (CareActivity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in InsertCareActivity) (CareActivity, error) {
	in.Type = strings.TrimSpace(in.Type)
	in.Title = strings.TrimSpace(in.Title)

	if in.PetID <= 0 {
		return CareActivity{}, ErrInvalidInput
	}
	if in.Type == "" || in.Title == "" {
		return CareActivity{}, ErrInvalidInput
	}
	if in.ScheduledDate.IsZero() {
		return CareActivity{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, in)
}

// Update applies a partial update. When the request marks the activity
// completed without supplying a completion date, the service stamps the
// current time.
func (s *Service) Update(ctx context.Context, id int64, in UpdateCareActivity) (CareActivity, error) {
	if in.IsZero() {
		return CareActivity{}, ErrInvalidInput
	}
	if in.PetID != nil && *in.PetID <= 0 {
		return CareActivity{}, ErrInvalidInput
	}

	if in.Completed != nil && *in.Completed && in.CompletedDate == nil {
		now := s.now()
		in.CompletedDate = &now
	}

	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
