package pets

import "time"

// HealthStatus is the coarse health classification shown on pet cards.
type HealthStatus string

const (
	StatusHealthy        HealthStatus = "healthy"
	StatusNeedsAttention HealthStatus = "needs_attention"
	StatusSick           HealthStatus = "sick"
)

func (s HealthStatus) Valid() bool {
	switch s {
	case StatusHealthy, StatusNeedsAttention, StatusSick:
		return true
	}
	return false
}

// Pet is a pet profile. ID and CreatedAt are store-assigned.
type Pet struct {
	ID      int64
	Name    string
	Species string // free-form category: dog, cat, ...
	Breed   string

	Age    int // years
	Weight int // pounds

	// Either an external URL or an inlined base64 data URL set by photo upload.
	PhotoURL *string

	HealthStatus HealthStatus
	NextCheckup  *time.Time

	CreatedAt time.Time
}

// InsertPet is the shape accepted on creation: the full record minus the
// store-assigned fields.
type InsertPet struct {
	Name    string
	Species string
	Breed   string

	Age    int
	Weight int

	PhotoURL     *string
	HealthStatus HealthStatus
	NextCheckup  *time.Time
}

// UpdatePet carries a partial update. Nil means the field was not supplied
// and keeps its stored value.
type UpdatePet struct {
	Name    *string
	Species *string
	Breed   *string

	Age    *int
	Weight *int

	PhotoURL     *string
	HealthStatus *HealthStatus
	NextCheckup  *time.Time
}

// IsZero reports whether no field was supplied at all.
func (u UpdatePet) IsZero() bool {
	return u == UpdatePet{}
}
