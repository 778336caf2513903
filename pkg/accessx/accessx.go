// Package accessx is the single shared access-policy module for the
// storefront. Every guard call site classifies paths through the one
// canonical configuration here instead of keeping its own list.
package accessx

import (
	"strings"

	"github.com/vitacart/storefront/pkg/tokenx"
)

// AccessClass is the minimum session required to serve a path.
type AccessClass string

const (
	Public          AccessClass = "public"
	UserRestricted  AccessClass = "user"
	AdminRestricted AccessClass = "admin"
)

// Classifier matches request paths against the restricted-path lists.
// Matching is case-insensitive substring containment; the admin list is
// checked first since admin pages are a superset of "needs auth".
type Classifier struct {
	// MountPrefix is stripped from incoming paths before matching, so the
	// same policy works whether the storefront is mounted at / or under a
	// subpath.
	MountPrefix string

	adminPaths []string
	userPaths  []string
}

// Default returns the canonical storefront classifier.
func Default() *Classifier {
	return &Classifier{
		adminPaths: []string{
			"/admin/",
		},
		userPaths: []string{
			"/cart.html",
			"/checkout.html",
			"/orders.html",
			"/order-detail.html",
			"/profile.html",
			"/payment.html",
		},
	}
}

// Classify returns the access class for a request path. Unmatched paths are
// public.
func (c *Classifier) Classify(path string) AccessClass {
	p := c.Normalize(path)

	for _, restricted := range c.adminPaths {
		if strings.Contains(p, restricted) {
			return AdminRestricted
		}
	}

	for _, restricted := range c.userPaths {
		if strings.Contains(p, restricted) {
			return UserRestricted
		}
	}

	return Public
}

// Normalize lowercases the path and strips the mount prefix so call sites
// never need parallel near-duplicate lists.
func (c *Classifier) Normalize(path string) string {
	p := strings.ToLower(path)

	if c.MountPrefix != "" {
		p = strings.TrimPrefix(p, strings.ToLower(c.MountPrefix))
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
	}

	return p
}

// Satisfied reports whether a session with the given authentication state
// and role may access a path of the given class.
func Satisfied(class AccessClass, authenticated bool, role tokenx.Role) bool {
	switch class {
	case AdminRestricted:
		return authenticated && role == tokenx.RoleAdmin
	case UserRestricted:
		return authenticated
	default:
		return true
	}
}
