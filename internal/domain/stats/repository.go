package stats

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("daily stats not found")

type Repository interface {
	// ListByPet returns stats for one pet, optionally narrowed to rows whose
	// date matches exactly.
	ListByPet(ctx context.Context, petID int64, date *time.Time) ([]DailyStats, error)
	Create(ctx context.Context, in InsertDailyStats) (DailyStats, error)
	Update(ctx context.Context, id int64, in UpdateDailyStats) (DailyStats, error)
}
