package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petcare-companion/internal/domain/health"
)

type healthRepo struct {
	mu     sync.RWMutex
	byID   map[int64]health.HealthRecord
	nextID int64
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		byID:   make(map[int64]health.HealthRecord),
		nextID: 1,
	}
}

func (r *healthRepo) ListByPet(ctx context.Context, petID int64) ([]health.HealthRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.HealthRecord, 0)
	for _, rec := range r.byID {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *healthRepo) Create(ctx context.Context, in health.InsertHealthRecord) (health.HealthRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := health.HealthRecord{
		ID:           r.nextID,
		PetID:        in.PetID,
		Type:         in.Type,
		Title:        in.Title,
		Notes:        in.Notes,
		Veterinarian: in.Veterinarian,
		Date:         in.Date,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.byID[rec.ID] = rec
	return rec, nil
}
