package pets

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no pet matches the id.
var ErrNotFound = errors.New("pet not found")

type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)

	// Create persists the record; the store assigns ID and CreatedAt and the
	// full persisted shape is returned.
	Create(ctx context.Context, in InsertPet) (Pet, error)

	// Update merges only the supplied fields onto the stored record.
	Update(ctx context.Context, id int64, in UpdatePet) (Pet, error)

	// Delete reports whether a record existed and was removed. Deleting a
	// nonexistent id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
