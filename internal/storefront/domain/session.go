package domain

import "github.com/vitacart/storefront/pkg/tokenx"

// SessionState is derived fresh from the persisted credential on every
// check. It is never cached across requests; no other flag is trusted.
type SessionState struct {
	Authenticated bool
	Role          tokenx.Role
	UserID        string
	UserName      string
}

// Anonymous is the state for a visitor with no valid credential.
func Anonymous() SessionState {
	return SessionState{Role: tokenx.RoleUnknown}
}
