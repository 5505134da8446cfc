package repository

import "context"

// SeedRepository reads the pre-populated generation fragments. Entries are
// written only by the offline seeding command.
type SeedRepository interface {
	Init(ctx context.Context) error
	// GetRandom returns one uniformly random content string drawn across the
	// given categories, or domain.ErrMissingSeedData when they hold no rows.
	GetRandom(ctx context.Context, categories ...string) (string, error)
	// Insert upserts one entry; duplicate (category, content) pairs are
	// silently skipped. Returns true iff a row was added.
	Insert(ctx context.Context, category, content string) (bool, error)
}
