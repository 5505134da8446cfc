package domain

import "errors"

var (
	// ErrNotFound covers both truly absent rows and rows owned by someone
	// else; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation, e.g. a taken username.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials is returned for unknown usernames, wrong
	// passwords, and disabled accounts alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingSeedData indicates an empty seed category, a data-integrity
	// problem rather than a user error.
	ErrMissingSeedData = errors.New("missing seed data")
)
