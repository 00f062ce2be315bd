package domain

import "time"

// Admin models a back-office operator. Admins are created only by the
// out-of-band seeding step, never through the public API.
type Admin struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
