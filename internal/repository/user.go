package repository

import (
	"context"

	"charforge/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	// Create inserts a new user. The storage layer's uniqueness constraint is
	// the source of truth for duplicate usernames; a violation surfaces as
	// domain.ErrConflict.
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// Delete removes the user and, through the schema's cascade, every
	// character the user owns. Returns true iff a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
