package domain

import "time"

// SubjectType differentiates user vs admin tokens.
type SubjectType string

const (
	SubjectTypeUser  SubjectType = "USER"
	SubjectTypeAdmin SubjectType = "ADMIN"
)

// RoleAdmin is the role claim carried by admin-scoped tokens.
const RoleAdmin = "admin"

// Token describes issued bearer token metadata. Tokens are stateless
// and never persisted; this is the decoded view of a JWT.
type Token struct {
	SubjectID string
	Subject   SubjectType
	Role      string
	ExpiresAt time.Time
	IssuedAt  time.Time
}
