package dto

import "time"

// MembershipStatusResponse is the customer-facing tier view.
type MembershipStatusResponse struct {
	Active        bool       `json:"active"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	DaysRemaining int        `json:"days_remaining"`
	Requested     bool       `json:"requested"`
}

// MembershipExtendRequest payload; days defaults to 30 when omitted.
type MembershipExtendRequest struct {
	Days int `json:"days"`
}

// MemberResponse is one row of the admin members listing.
type MemberResponse struct {
	UserID        string     `json:"user_id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	DaysRemaining int        `json:"days_remaining"`
}

// MembershipRequestResponse is one row of the pending requests listing.
type MembershipRequestResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
