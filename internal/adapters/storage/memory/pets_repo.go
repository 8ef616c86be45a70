// Package memory implements the repositories on plain maps. It backs dev
// mode and the HTTP tests; the store assigns serial ids and creation times
// the same way the Postgres adapter does.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petcare-companion/internal/domain/pets"
)

type petRepo struct {
	mu     sync.RWMutex
	byID   map[int64]pets.Pet
	nextID int64
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID:   make(map[int64]pets.Pet),
		nextID: 1,
	}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Create(ctx context.Context, in pets.InsertPet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := pets.Pet{
		ID:           r.nextID,
		Name:         in.Name,
		Species:      in.Species,
		Breed:        in.Breed,
		Age:          in.Age,
		Weight:       in.Weight,
		PhotoURL:     in.PhotoURL,
		HealthStatus: in.HealthStatus,
		NextCheckup:  in.NextCheckup,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.byID[p.ID] = p
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, id int64, in pets.UpdatePet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Species != nil {
		p.Species = *in.Species
	}
	if in.Breed != nil {
		p.Breed = *in.Breed
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.PhotoURL != nil {
		p.PhotoURL = in.PhotoURL
	}
	if in.HealthStatus != nil {
		p.HealthStatus = *in.HealthStatus
	}
	if in.NextCheckup != nil {
		p.NextCheckup = in.NextCheckup
	}

	r.byID[id] = p
	return p, nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
