package repository

import (
	"context"

	"charforge/internal/domain"
)

// ListLimit caps ListByOwner to a fixed page of the most recent characters.
const ListLimit = 20

// CharacterRepository defines persistence operations for Character entities.
// Every point read and mutation is scoped by both character id and owner id;
// a character owned by someone else behaves exactly like a missing row.
type CharacterRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, character *domain.Character, ownerID int64) (*domain.Character, error)
	// ListByOwner returns the owner's characters, newest created first,
	// capped at ListLimit.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Character, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Character, error)
	// Update applies the set fields of the partial update and refreshes
	// updated_at. An empty update returns the current row untouched.
	Update(ctx context.Context, id, ownerID int64, update domain.CharacterUpdate) (*domain.Character, error)
	// Delete returns true iff a row was removed.
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
}
