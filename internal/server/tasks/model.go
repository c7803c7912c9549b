package tasks

import "time"

// Task is one todo item. OwnerID is fixed at creation and never exposed to
// mutation; UpdatedAt is unset until the first mutation.
type Task struct {
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"userId"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Change is a partial mutation; nil fields are left untouched.
type Change struct {
	Text      *string
	Completed *bool
}
