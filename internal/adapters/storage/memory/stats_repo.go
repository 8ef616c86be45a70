package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petcare-companion/internal/domain/stats"
)

type statsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]stats.DailyStats
	nextID int64
}

func NewStatsRepo() stats.Repository {
	return &statsRepo{
		byID:   make(map[int64]stats.DailyStats),
		nextID: 1,
	}
}

func (r *statsRepo) ListByPet(ctx context.Context, petID int64, date *time.Time) ([]stats.DailyStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.DailyStats, 0)
	for _, d := range r.byID {
		if d.PetID != petID {
			continue
		}
		if date != nil && !d.Date.Equal(*date) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *statsRepo) Create(ctx context.Context, in stats.InsertDailyStats) (stats.DailyStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := stats.DailyStats{
		ID:              r.nextID,
		PetID:           in.PetID,
		Date:            in.Date,
		Steps:           in.Steps,
		ExerciseMinutes: in.ExerciseMinutes,
		SleepHours:      in.SleepHours,
		Meals:           in.Meals,
		CreatedAt:       time.Now().UTC(),
	}
	r.nextID++
	r.byID[d.ID] = d
	return d, nil
}

func (r *statsRepo) Update(ctx context.Context, id int64, in stats.UpdateDailyStats) (stats.DailyStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return stats.DailyStats{}, stats.ErrNotFound
	}

	if in.PetID != nil {
		d.PetID = *in.PetID
	}
	if in.Date != nil {
		d.Date = *in.Date
	}
	if in.Steps != nil {
		d.Steps = *in.Steps
	}
	if in.ExerciseMinutes != nil {
		d.ExerciseMinutes = *in.ExerciseMinutes
	}
	if in.SleepHours != nil {
		d.SleepHours = *in.SleepHours
	}
	if in.Meals != nil {
		d.Meals = *in.Meals
	}

	r.byID[id] = d
	return d, nil
}
