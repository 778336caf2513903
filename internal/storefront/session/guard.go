// Package session implements the storefront's session and access guard.
// A visitor's state is always a pure function of the persisted credential
// and the current time: every check re-derives it from the store, and any
// credential found expired or malformed is purged on the spot so invalid
// state never persists past one check.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vitacart/storefront/internal/storefront/domain"
	"github.com/vitacart/storefront/internal/storefront/store"
	"github.com/vitacart/storefront/pkg/shopapi"
	"github.com/vitacart/storefront/pkg/tokenx"
)

// ErrInvalidCredentials is returned when the backend rejects a login.
var ErrInvalidCredentials = errors.New("session: invalid credentials")

// Guard owns the credential lifecycle for all visitors. It is constructed
// once per application and passed to the handlers that need it; there is no
// ambient global instance.
type Guard struct {
	Store  store.Store
	API    *shopapi.Client
	Logger *slog.Logger

	// Now is the clock used for validity checks. Defaults to time.Now.
	Now func() time.Time
}

func (g *Guard) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// State derives the visitor's session state from the persisted credential.
// Decode failures and expiry are indistinguishable from "not logged in" to
// the caller; they are logged at debug and the credential is purged.
func (g *Guard) State(ctx context.Context, visitorID string) domain.SessionState {
	cred, err := g.Store.Credentials().Get(ctx, visitorID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			g.Logger.Error("credential lookup failed", "error", err)
		}
		return domain.Anonymous()
	}

	payload, err := tokenx.Decode(cred.Token)
	if err != nil {
		g.Logger.Debug("stored token failed to decode, purging", "error", err)
		g.purge(ctx, visitorID)
		return domain.Anonymous()
	}

	if err := payload.ValidateExpiry(g.now()); err != nil {
		g.Logger.Debug("stored token invalid, purging", "error", err)
		g.purge(ctx, visitorID)
		return domain.Anonymous()
	}

	// Display fields come from the stored profile record; the token is only
	// the validity/role oracle.
	return domain.SessionState{
		Authenticated: true,
		Role:          payload.UserRole(),
		UserID:        cred.Profile.UserID,
		UserName:      cred.Profile.Name,
	}
}

// Login authenticates against the backend and persists the returned
// credential and profile, transitioning the visitor to Authenticated.
// Errors are returned, never panicked; a token that fails to decode or
// carries no usable expiry is treated as a failed login.
func (g *Guard) Login(ctx context.Context, visitorID, email, password string) (domain.SessionState, error) {
	result, err := g.API.Login(ctx, email, password)
	if err != nil {
		var apiErr *shopapi.APIError
		if errors.As(err, &apiErr) {
			return domain.Anonymous(), ErrInvalidCredentials
		}
		return domain.Anonymous(), fmt.Errorf("login request failed: %w", err)
	}

	payload, err := tokenx.Decode(result.Token)
	if err != nil {
		return domain.Anonymous(), fmt.Errorf("backend issued undecodable token: %w", err)
	}
	if err := payload.ValidateExpiry(g.now()); err != nil {
		return domain.Anonymous(), fmt.Errorf("backend issued unusable token: %w", err)
	}

	cred := domain.Credential{
		VisitorID: visitorID,
		Token:     result.Token,
		Profile: domain.Profile{
			UserID: result.ID,
			Name:   result.Name,
			Email:  result.Email,
			Role:   result.Role,
		},
		ExpiresAt: payload.ExpiresAt.Time,
	}
	if err := g.Store.Credentials().Put(ctx, cred); err != nil {
		return domain.Anonymous(), fmt.Errorf("failed to persist credential: %w", err)
	}

	return domain.SessionState{
		Authenticated: true,
		Role:          payload.UserRole(),
		UserID:        cred.Profile.UserID,
		UserName:      cred.Profile.Name,
	}, nil
}

// Logout revokes the token server-side when possible and always clears
// local state. Server failures are swallowed: logout is best-effort from
// the backend's perspective but always succeeds locally. Idempotent.
func (g *Guard) Logout(ctx context.Context, visitorID string) {
	cred, err := g.Store.Credentials().Get(ctx, visitorID)
	if err == nil && cred.Token != "" {
		if err := g.API.Logout(ctx, cred.Token); err != nil {
			g.Logger.Warn("server-side logout failed, clearing local state anyway", "error", err)
		}
	}

	g.purge(ctx, visitorID)
}

// ForceLogout clears the credential without contacting the backend. Called
// when any proxied API call comes back 401: the token is already dead.
func (g *Guard) ForceLogout(ctx context.Context, visitorID string) {
	g.purge(ctx, visitorID)
}

// Bearer returns the visitor's raw token for proxied backend calls, or
// false when there is no valid session. Validity is re-checked here, not
// cached from an earlier State call.
func (g *Guard) Bearer(ctx context.Context, visitorID string) (string, bool) {
	cred, err := g.Store.Credentials().Get(ctx, visitorID)
	if err != nil {
		return "", false
	}

	payload, err := tokenx.Decode(cred.Token)
	if err != nil || payload.ValidateExpiry(g.now()) != nil {
		g.purge(ctx, visitorID)
		return "", false
	}

	return cred.Token, true
}

// purge removes the token and companion profile together. The row holds
// both, so a single transactional delete leaves no window where one exists
// without the other.
func (g *Guard) purge(ctx context.Context, visitorID string) {
	err := g.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Credentials().Delete(ctx, visitorID)
	})
	if err != nil {
		g.Logger.Error("failed to purge credential", "error", err, "visitor_id", visitorID)
	}
}
