// Package dashboard derives the aggregate numbers shown on the home screen.
package dashboard

import (
	"context"
	"math"

	"petcare-companion/internal/domain/activities"
	"petcare-companion/internal/domain/pets"
)

// Placeholders are the demo metrics the dashboard ships as fixed values.
// They are configurable but never derived from daily stats.
type Placeholders struct {
	DailySteps       int
	StepGoalProgress int
}

type Stats struct {
	TotalPets        int
	HealthyPets      int
	PendingTasks     int
	DailySteps       int
	HealthScore      int
	StepGoalProgress int
}

type Service struct {
	pets         *pets.Service
	activities   *activities.Service
	placeholders Placeholders
}

func NewService(petsSvc *pets.Service, activitiesSvc *activities.Service, placeholders Placeholders) *Service {
	return &Service{
		pets:         petsSvc,
		activities:   activitiesSvc,
		placeholders: placeholders,
	}
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	allPets, err := s.pets.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	allActivities, err := s.activities.List(ctx, activities.ListFilter{})
	if err != nil {
		return Stats{}, err
	}

	healthy := 0
	for _, p := range allPets {
		if p.HealthStatus == pets.StatusHealthy {
			healthy++
		}
	}

	pending := 0
	for _, a := range allActivities {
		if !a.Completed {
			pending++
		}
	}

	return Stats{
		TotalPets:        len(allPets),
		HealthyPets:      healthy,
		PendingTasks:     pending,
		DailySteps:       s.placeholders.DailySteps,
		HealthScore:      healthScore(healthy, len(allPets)),
		StepGoalProgress: s.placeholders.StepGoalProgress,
	}, nil
}

// healthScore is the rounded percentage of healthy pets. With no pets it is
// defined as 0.
func healthScore(healthy, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(healthy) / float64(total) * 100))
}
