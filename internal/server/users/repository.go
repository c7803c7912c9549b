package users

import (
	"context"
)

// Repository is the credential store. Implementations must enforce
// case-insensitive email uniqueness and monotonic id assignment inside a
// single serialized cycle per call.
type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
