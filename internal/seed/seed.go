// Package seed inserts the demo dataset. Seeding is an explicit operation
// invoked from the process entry point, never a side effect of importing a
// package.
package seed

import (
	"context"
	"fmt"
	"time"

	"petcare-companion/internal/domain/activities"
	"petcare-companion/internal/domain/health"
	"petcare-companion/internal/domain/pets"
	"petcare-companion/internal/domain/stats"

	"github.com/rs/zerolog/log"
)

// Repositories collects everything EnsureSampleData writes through.
type Repositories struct {
	Pets       pets.Repository
	Activities activities.Repository
	Health     health.Repository
	Stats      stats.Repository
}

// EnsureSampleData inserts the demo rows when the pets table is empty.
// Calling it again is a no-op, so restarts never duplicate data.
func EnsureSampleData(ctx context.Context, repos Repositories) error {
	existing, err := repos.Pets.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: check pets: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Int("pets", len(existing)).Msg("sample data already present, skipping seed")
		return nil
	}

	created := make([]pets.Pet, 0, len(samplePets))
	for _, in := range samplePets {
		p, err := repos.Pets.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed: create pet %q: %w", in.Name, err)
		}
		created = append(created, p)
	}

	for _, build := range sampleActivities {
		if _, err := repos.Activities.Create(ctx, build(created)); err != nil {
			return fmt.Errorf("seed: create care activity: %w", err)
		}
	}
	for _, build := range sampleHealthRecords {
		if _, err := repos.Health.Create(ctx, build(created)); err != nil {
			return fmt.Errorf("seed: create health record: %w", err)
		}
	}
	for _, build := range sampleDailyStats {
		if _, err := repos.Stats.Create(ctx, build(created)); err != nil {
			return fmt.Errorf("seed: create daily stats: %w", err)
		}
	}

	log.Info().Int("pets", len(created)).Msg("sample data seeded")
	return nil
}

func strPtr(s string) *string { return &s }

var samplePets = []pets.InsertPet{
	{
		Name:         "Bella",
		Species:      "dog",
		Breed:        "Border Collie",
		Age:          3,
		Weight:       23,
		HealthStatus: pets.StatusHealthy,
		PhotoURL:     strPtr("https://images.unsplash.com/photo-1551717743-49959800b1f6?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"),
	},
	{
		Name:         "Whiskers",
		Species:      "cat",
		Breed:        "Maine Coon",
		Age:          5,
		Weight:       7,
		HealthStatus: pets.StatusHealthy,
		PhotoURL:     strPtr("https://images.unsplash.com/photo-1574158622682-e40e69881006?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"),
	},
	{
		Name:         "Rocky",
		Species:      "dog",
		Breed:        "German Shepherd",
		Age:          7,
		Weight:       35,
		HealthStatus: pets.StatusNeedsAttention,
		PhotoURL:     strPtr("https://images.unsplash.com/photo-1589941013453-ec89f33b5e95?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"),
	},
}

// The dependent samples reference pets by position in the created slice.
var sampleActivities = []func([]pets.Pet) activities.InsertCareActivity{
	func(p []pets.Pet) activities.InsertCareActivity {
		return activities.InsertCareActivity{
			PetID:         p[0].ID,
			Type:          "exercise",
			Title:         "Morning Walk",
			Description:   strPtr("Daily 30-minute walk in the park"),
			ScheduledDate: time.Date(2024, 12, 16, 8, 0, 0, 0, time.UTC),
		}
	},
	func(p []pets.Pet) activities.InsertCareActivity {
		return activities.InsertCareActivity{
			PetID:         p[0].ID,
			Type:          "feeding",
			Title:         "Breakfast",
			Description:   strPtr("High-quality dry food with supplements"),
			Completed:     true,
			ScheduledDate: time.Date(2024, 12, 16, 7, 0, 0, 0, time.UTC),
		}
	},
	func(p []pets.Pet) activities.InsertCareActivity {
		return activities.InsertCareActivity{
			PetID:         p[1].ID,
			Type:          "grooming",
			Title:         "Weekly Brushing",
			Description:   strPtr("Brush coat to prevent matting"),
			ScheduledDate: time.Date(2024, 12, 17, 10, 0, 0, 0, time.UTC),
		}
	},
	func(p []pets.Pet) activities.InsertCareActivity {
		return activities.InsertCareActivity{
			PetID:         p[2].ID,
			Type:          "medical",
			Title:         "Joint Supplement",
			Description:   strPtr("Daily glucosamine supplement"),
			ScheduledDate: time.Date(2024, 12, 16, 19, 0, 0, 0, time.UTC),
		}
	},
}

var sampleHealthRecords = []func([]pets.Pet) health.InsertHealthRecord{
	func(p []pets.Pet) health.InsertHealthRecord {
		return health.InsertHealthRecord{
			PetID:        p[0].ID,
			Type:         "checkup",
			Title:        "Annual Checkup",
			Date:         time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
			Veterinarian: strPtr("Dr. Sarah Johnson"),
			Notes:        strPtr("Perfect health, all vitals normal"),
		}
	},
	func(p []pets.Pet) health.InsertHealthRecord {
		return health.InsertHealthRecord{
			PetID:        p[1].ID,
			Type:         "vaccination",
			Title:        "Annual Vaccines",
			Date:         time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
			Veterinarian: strPtr("Dr. Mike Chen"),
			Notes:        strPtr("No adverse reactions, next due in 2025"),
		}
	},
	func(p []pets.Pet) health.InsertHealthRecord {
		return health.InsertHealthRecord{
			PetID:        p[2].ID,
			Type:         "treatment",
			Title:        "Joint Treatment Plan",
			Date:         time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			Veterinarian: strPtr("Dr. Emily Rodriguez"),
			Notes:        strPtr("Monitor mobility and adjust dosage as needed"),
		}
	},
}

var sampleDailyStats = []func([]pets.Pet) stats.InsertDailyStats{
	func(p []pets.Pet) stats.InsertDailyStats {
		return stats.InsertDailyStats{
			PetID:           p[0].ID,
			Date:            time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			Steps:           8500,
			ExerciseMinutes: 45,
			SleepHours:      12,
			Meals:           2,
		}
	},
	func(p []pets.Pet) stats.InsertDailyStats {
		return stats.InsertDailyStats{
			PetID:           p[1].ID,
			Date:            time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			Steps:           2100,
			ExerciseMinutes: 15,
			SleepHours:      16,
			Meals:           3,
		}
	},
	func(p []pets.Pet) stats.InsertDailyStats {
		return stats.InsertDailyStats{
			PetID:           p[2].ID,
			Date:            time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			Steps:           3200,
			ExerciseMinutes: 20,
			SleepHours:      14,
			Meals:           2,
		}
	},
}
