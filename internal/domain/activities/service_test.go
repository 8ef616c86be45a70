package activities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	updated UpdateCareActivity
}

func (r *stubRepo) List(ctx context.Context, filter ListFilter) ([]CareActivity, error) {
	return nil, nil
}

func (r *stubRepo) GetByID(ctx context.Context, id int64) (CareActivity, error) {
	return CareActivity{ID: id}, nil
}

func (r *stubRepo) Create(ctx context.Context, in InsertCareActivity) (CareActivity, error) {
	return CareActivity{ID: 1, PetID: in.PetID, Completed: in.Completed}, nil
}

func (r *stubRepo) Update(ctx context.Context, id int64, in UpdateCareActivity) (CareActivity, error) {
	r.updated = in
	return CareActivity{ID: id}, nil
}

func (r *stubRepo) Delete(ctx context.Context, id int64) (bool, error) { return true, nil }

func TestServiceUpdate_StampsCompletionTime(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)
	fixed := time.Date(2024, 12, 16, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	done := true
	_, err := svc.Update(context.Background(), 1, UpdateCareActivity{Completed: &done})
	require.NoError(t, err)
	require.NotNil(t, repo.updated.CompletedDate)
	require.True(t, repo.updated.CompletedDate.Equal(fixed))
}

func TestServiceUpdate_KeepsExplicitCompletionDate(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time {
		t.Fatal("clock must not be read when the client supplies completedDate")
		return time.Time{}
	}

	done := true
	explicit := time.Date(2024, 12, 15, 18, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), 1, UpdateCareActivity{
		Completed:     &done,
		CompletedDate: &explicit,
	})
	require.NoError(t, err)
	require.True(t, repo.updated.CompletedDate.Equal(explicit))
}

func TestServiceUpdate_NoStampWhenUncompleting(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	undone := false
	_, err := svc.Update(context.Background(), 1, UpdateCareActivity{Completed: &undone})
	require.NoError(t, err)
	require.Nil(t, repo.updated.CompletedDate)
}

func TestServiceUpdate_Rejects(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, err := svc.Update(context.Background(), 1, UpdateCareActivity{})
	require.ErrorIs(t, err, ErrInvalidInput)

	zero := int64(0)
	_, err = svc.Update(context.Background(), 1, UpdateCareActivity{PetID: &zero})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceCreate_Rejects(t *testing.T) {
	svc := NewService(&stubRepo{})
	scheduled := time.Date(2024, 12, 16, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   InsertCareActivity
	}{
		{"missing pet", InsertCareActivity{Type: "exercise", Title: "Walk", ScheduledDate: scheduled}},
		{"blank title", InsertCareActivity{PetID: 1, Type: "exercise", Title: "  ", ScheduledDate: scheduled}},
		{"blank type", InsertCareActivity{PetID: 1, Title: "Walk", ScheduledDate: scheduled}},
		{"zero schedule", InsertCareActivity{PetID: 1, Type: "exercise", Title: "Walk"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
