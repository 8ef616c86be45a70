// Package stats holds per-pet daily activity metrics. The API only exposes
// reads; rows are written through the repository (seeding, device sync jobs).
package stats

import "time"

type DailyStats struct {
	ID    int64
	PetID int64

	Date time.Time

	Steps           int
	ExerciseMinutes int
	SleepHours      int
	Meals           int

	CreatedAt time.Time
}

type InsertDailyStats struct {
	PetID int64

	Date time.Time

	Steps           int
	ExerciseMinutes int
	SleepHours      int
	Meals           int
}

// UpdateDailyStats carries a partial update; nil fields stay untouched.
type UpdateDailyStats struct {
	PetID *int64

	Date *time.Time

	Steps           *int
	ExerciseMinutes *int
	SleepHours      *int
	Meals           *int
}

func (u UpdateDailyStats) IsZero() bool {
	return u == UpdateDailyStats{}
}
