package domain

import "time"

// User represents a registered account. PasswordHash never leaves the
// service/repository boundary; handlers expose users through sanitized DTOs.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Disabled     bool
	CreatedAt    time.Time
}
