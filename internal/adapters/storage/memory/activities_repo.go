package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petcare-companion/internal/domain/activities"
)

type activityRepo struct {
	mu     sync.RWMutex
	byID   map[int64]activities.CareActivity
	nextID int64
}

func NewActivityRepo() activities.Repository {
	return &activityRepo{
		byID:   make(map[int64]activities.CareActivity),
		nextID: 1,
	}
}

func (r *activityRepo) List(ctx context.Context, filter activities.ListFilter) ([]activities.CareActivity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activities.CareActivity, 0, len(r.byID))
	for _, a := range r.byID {
		if filter.PetID != nil && a.PetID != *filter.PetID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *activityRepo) GetByID(ctx context.Context, id int64) (activities.CareActivity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return activities.CareActivity{}, activities.ErrNotFound
	}
	return a, nil
}

func (r *activityRepo) Create(ctx context.Context, in activities.InsertCareActivity) (activities.CareActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := activities.CareActivity{
		ID:            r.nextID,
		PetID:         in.PetID,
		Type:          in.Type,
		Title:         in.Title,
		Description:   in.Description,
		Completed:     in.Completed,
		ScheduledDate: in.ScheduledDate,
		CreatedAt:     time.Now().UTC(),
	}
	r.nextID++
	r.byID[a.ID] = a
	return a, nil
}

func (r *activityRepo) Update(ctx context.Context, id int64, in activities.UpdateCareActivity) (activities.CareActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return activities.CareActivity{}, activities.ErrNotFound
	}

	if in.PetID != nil {
		a.PetID = *in.PetID
	}
	if in.Type != nil {
		a.Type = *in.Type
	}
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Description != nil {
		a.Description = in.Description
	}
	if in.Completed != nil {
		a.Completed = *in.Completed
	}
	if in.CompletedDate != nil {
		a.CompletedDate = in.CompletedDate
	}
	if in.ScheduledDate != nil {
		a.ScheduledDate = *in.ScheduledDate
	}

	r.byID[id] = a
	return a, nil
}

func (r *activityRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
