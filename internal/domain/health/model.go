// Package health holds veterinary history records. Records are append-only:
// the API exposes create and list, never update or delete.
package health

import "time"

type HealthRecord struct {
	ID    int64
	PetID int64

	Type  string // checkup, vaccination, treatment, ...
	Title string

	Notes        *string
	Veterinarian *string

	Date      time.Time
	CreatedAt time.Time
}

type InsertHealthRecord struct {
	PetID int64

	Type  string
	Title string

	Notes        *string
	Veterinarian *string

	Date time.Time
}
