package activities

import "time"

// CareActivity is a scheduled care task for a pet: feeding, exercise,
// grooming, medical and so on. The type is a free-form category.
type CareActivity struct {
	ID    int64
	PetID int64

	Type        string
	Title       string
	Description *string

	Completed bool
	// Set when the activity is marked completed; never accepted on creation.
	CompletedDate *time.Time

	ScheduledDate time.Time
	CreatedAt     time.Time
}

// InsertCareActivity is the creation shape: no ID, CreatedAt or
// CompletedDate.
type InsertCareActivity struct {
	PetID int64

	Type        string
	Title       string
	Description *string

	Completed     bool
	ScheduledDate time.Time
}

// UpdateCareActivity carries a partial update; nil fields stay untouched.
// CompletedDate may be supplied here, unlike on creation.
type UpdateCareActivity struct {
	PetID *int64

	Type        *string
	Title       *string
	Description *string

	Completed     *bool
	CompletedDate *time.Time
	ScheduledDate *time.Time
}

func (u UpdateCareActivity) IsZero() bool {
	return u == UpdateCareActivity{}
}
