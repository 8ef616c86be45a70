package activities

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("care activity not found")

// ListFilter narrows List; a nil PetID lists everything.
type ListFilter struct {
	PetID *int64
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]CareActivity, error)
	GetByID(ctx context.Context, id int64) (CareActivity, error)
	Create(ctx context.Context, in InsertCareActivity) (CareActivity, error)
	Update(ctx context.Context, id int64, in UpdateCareActivity) (CareActivity, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
