package pets

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

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in InsertPet) (Pet, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = strings.TrimSpace(in.Species)
	in.Breed = strings.TrimSpace(in.Breed)

	if in.Name == "" || in.Species == "" || in.Breed == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 || in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	if in.HealthStatus == "" {
		in.HealthStatus = StatusHealthy
	}
	if !in.HealthStatus.Valid() {
		return Pet{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, in)
}

// Update applies a non-empty subset of mutable fields. An empty subset is
// rejected rather than treated as a no-op.
func (s *Service) Update(ctx context.Context, id int64, in UpdatePet) (Pet, error) {
	if in.IsZero() {
		return Pet{}, ErrInvalidInput
	}
	if in.HealthStatus != nil && !in.HealthStatus.Valid() {
		return Pet{}, ErrInvalidInput
	}
	if in.Age != nil && *in.Age < 0 {
		return Pet{}, ErrInvalidInput
	}
	if in.Weight != nil && *in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// UpdatePhoto replaces only the photo URL, leaving the rest of the profile
// untouched.
func (s *Service) UpdatePhoto(ctx context.Context, id int64, photoURL string) (Pet, error) {
	return s.repo.Update(ctx, id, UpdatePet{PhotoURL: &photoURL})
}
