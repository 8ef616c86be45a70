package stats

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByPet(ctx context.Context, petID int64, date *time.Time) ([]DailyStats, error) {
	return s.repo.ListByPet(ctx, petID, date)
}

func (s *Service) Create(ctx context.Context, in InsertDailyStats) (DailyStats, error) {
	if in.PetID <= 0 {
		return DailyStats{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return DailyStats{}, ErrInvalidInput
	}
	if in.Steps < 0 || in.ExerciseMinutes < 0 || in.SleepHours < 0 || in.Meals < 0 {
		return DailyStats{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, in)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateDailyStats) (DailyStats, error) {
	if in.IsZero() {
		return DailyStats{}, ErrInvalidInput
	}
	for _, v := range []*int{in.Steps, in.ExerciseMinutes, in.SleepHours, in.Meals} {
		if v != nil && *v < 0 {
			return DailyStats{}, ErrInvalidInput
		}
	}

	return s.repo.Update(ctx, id, in)
}
