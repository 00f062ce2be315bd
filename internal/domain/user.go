package domain

import "time"

// User is the domain model for shop customers.
type User struct {
	ID                  string
	Email               string
	FullName            string
	PhoneNumber         *string
	PasswordHash        string
	MembershipActive    bool
	MembershipExpiresAt *time.Time
	MembershipRequested bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasActiveMembership reports whether the user's paid membership is
// active at the given instant. This is the single expiry check used by
// cart pricing, checkout and the membership status endpoint.
func (u *User) HasActiveMembership(now time.Time) bool {
	if u == nil || !u.MembershipActive || u.MembershipExpiresAt == nil {
		return false
	}
	return u.MembershipExpiresAt.After(now)
}

// MembershipDaysRemaining returns whole days until expiry, zero when
// the membership is lapsed or was never granted.
func (u *User) MembershipDaysRemaining(now time.Time) int {
	if !u.HasActiveMembership(now) {
		return 0
	}
	return int(u.MembershipExpiresAt.Sub(now).Hours() / 24)
}
