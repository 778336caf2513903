package domain

import "time"

// Credential is a visitor's persisted bearer token plus the companion
// profile record stored alongside it. The two always live and die together:
// the store clears both atomically when either is purged.
type Credential struct {
	VisitorID string
	Token     string
	Profile   Profile

	// ExpiresAt mirrors the token's exp claim so housekeeping can purge
	// stale rows without decoding every token.
	ExpiresAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the user record returned at login. It is the authoritative
// source for display fields; the token is only the validity/role oracle.
type Profile struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
