package tokenx

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleClaimURI is the namespaced role claim key used by the shop backend's
// identity stack. It takes precedence over the short "role" claim.
const RoleClaimURI = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"

// Decode errors. The caller treats any of these as "not authenticated";
// they are never surfaced to end users directly.
var (
	ErrMalformedStructure = errors.New("tokenx: token must have exactly three dot-separated segments")
	ErrInvalidEncoding    = errors.New("tokenx: payload segment is not valid base64")
	ErrInvalidPayload     = errors.New("tokenx: payload is not a JSON object")
)

// Validity errors.
var (
	ErrNoExpiry = errors.New("tokenx: missing exp claim")
	ErrExpired  = errors.New("tokenx: token expired")
)

// Role is the coarse permission level carried by a token.
type Role string

const (
	RoleUser    Role = "User"
	RoleAdmin   Role = "Admin"
	RoleUnknown Role = "Unknown"
)

// Payload is the decoded, unverified claim set of a bearer token. The
// signature segment is never checked here; the issuing backend owns
// integrity. Only the middle segment is interpreted.
type Payload struct {
	jwt.RegisteredClaims

	// ShortRole is the compact "role" claim.
	ShortRole string `json:"role,omitempty"`

	// NamespacedRole is the long-form role claim. When both forms are
	// present the namespaced one wins.
	NamespacedRole string `json:"http://schemas.microsoft.com/ws/2008/06/identity/claims/role,omitempty"`

	// Optional display claims. The stored profile record is authoritative
	// for personalization; these exist only for completeness.
	Name   string `json:"name,omitempty"`
	NameID string `json:"nameid,omitempty"`
}

// Decode splits a bearer token into its three segments and decodes the
// middle (payload) segment. It is a pure function: no storage side effects,
// no signature verification.
func Decode(token string) (Payload, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return Payload{}, ErrMalformedStructure
	}

	raw, err := decodeSegment(segments[1])
	if err != nil {
		return Payload{}, ErrInvalidEncoding
	}

	// The payload must be a JSON object, not a bare scalar or array.
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") {
		return Payload{}, ErrInvalidPayload
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, ErrInvalidPayload
	}

	return p, nil
}

// decodeSegment translates the URL-safe base64 alphabet back to the standard
// one, restores padding, and decodes.
func decodeSegment(seg string) ([]byte, error) {
	seg = strings.ReplaceAll(seg, "-", "+")
	seg = strings.ReplaceAll(seg, "_", "/")

	if pad := len(seg) % 4; pad != 0 {
		seg += strings.Repeat("=", 4-pad)
	}

	return base64.StdEncoding.DecodeString(seg)
}

// ValidateExpiry checks the exp claim against now. A payload without exp is
// invalid (fail closed).
func (p Payload) ValidateExpiry(now time.Time) error {
	if p.ExpiresAt == nil {
		return ErrNoExpiry
	}

	// exp is seconds since epoch; compare at millisecond precision.
	if p.ExpiresAt.Time.UnixMilli() <= now.UnixMilli() {
		return ErrExpired
	}

	return nil
}

// Valid reports whether the payload carries an exp claim strictly in the future.
func (p Payload) Valid(now time.Time) bool {
	return p.ValidateExpiry(now) == nil
}

// UserRole extracts the role claim. Precedence: the namespaced URI claim
// first, then the short "role" claim. A valid token with no role claim at
// all belongs to a regular user.
func (p Payload) UserRole() Role {
	claim := p.NamespacedRole
	if claim == "" {
		claim = p.ShortRole
	}
	if claim == "" {
		return RoleUser
	}

	switch strings.ToLower(claim) {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return RoleUnknown
	}
}
