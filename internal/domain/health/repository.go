package health

import "context"

// Repository is intentionally narrow: records cannot be changed or removed
// once written.
type Repository interface {
	ListByPet(ctx context.Context, petID int64) ([]HealthRecord, error)
	Create(ctx context.Context, in InsertHealthRecord) (HealthRecord, error)
}
