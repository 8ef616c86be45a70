package pets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubRepo records the input the service hands to the store.
type stubRepo struct {
	created InsertPet
	updated UpdatePet
}

func (r *stubRepo) List(ctx context.Context) ([]Pet, error) { return nil, nil }

func (r *stubRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	return Pet{ID: id}, nil
}

func (r *stubRepo) Create(ctx context.Context, in InsertPet) (Pet, error) {
	r.created = in
	return Pet{ID: 1, Name: in.Name, HealthStatus: in.HealthStatus}, nil
}

func (r *stubRepo) Update(ctx context.Context, id int64, in UpdatePet) (Pet, error) {
	r.updated = in
	return Pet{ID: id}, nil
}

func (r *stubRepo) Delete(ctx context.Context, id int64) (bool, error) { return true, nil }

func TestServiceCreate_DefaultsAndTrims(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), InsertPet{
		Name:    "  Bella ",
		Species: "dog",
		Breed:   "Border Collie",
		Age:     3,
		Weight:  23,
	})
	require.NoError(t, err)
	require.Equal(t, "Bella", repo.created.Name)
	require.Equal(t, StatusHealthy, repo.created.HealthStatus, "empty status defaults to healthy")
}

func TestServiceCreate_Rejects(t *testing.T) {
	svc := NewService(&stubRepo{})

	cases := []struct {
		name string
		in   InsertPet
	}{
		{"blank name", InsertPet{Name: "   ", Species: "dog", Breed: "mixed"}},
		{"missing species", InsertPet{Name: "Bella", Breed: "mixed"}},
		{"negative age", InsertPet{Name: "Bella", Species: "dog", Breed: "mixed", Age: -1}},
		{"negative weight", InsertPet{Name: "Bella", Species: "dog", Breed: "mixed", Weight: -5}},
		{"unknown status", InsertPet{Name: "Bella", Species: "dog", Breed: "mixed", HealthStatus: "great"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestServiceUpdate_RejectsEmptyAndInvalid(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, err := svc.Update(context.Background(), 1, UpdatePet{})
	require.ErrorIs(t, err, ErrInvalidInput, "empty update is not a no-op")

	bad := HealthStatus("great")
	_, err = svc.Update(context.Background(), 1, UpdatePet{HealthStatus: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)

	neg := -1
	_, err = svc.Update(context.Background(), 1, UpdatePet{Age: &neg})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceUpdatePhoto_TouchesOnlyPhoto(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	_, err := svc.UpdatePhoto(context.Background(), 1, "data:image/png;base64,xxxx")
	require.NoError(t, err)
	require.NotNil(t, repo.updated.PhotoURL)
	require.Nil(t, repo.updated.Name)
	require.Nil(t, repo.updated.HealthStatus)
}
