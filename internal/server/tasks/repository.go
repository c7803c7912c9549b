package tasks

import (
	"context"
)

// Repository is the owner-scoped task store. Lookups by id are existence
// blind: an id owned by someone else is reported exactly like a missing id,
// so no caller can probe for another owner's tasks.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]Task, error)
	Create(ctx context.Context, ownerID int64, text string) (*Task, error)
	Update(ctx context.Context, ownerID, id int64, change Change) (*Task, error)
	Delete(ctx context.Context, ownerID, id int64) (*Task, error)
}
