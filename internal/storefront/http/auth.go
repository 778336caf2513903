package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vitacart/storefront/internal/storefront/session"
	"github.com/vitacart/storefront/pkg/httpx"
	"github.com/vitacart/storefront/pkg/slogx"
)

// LoginHandler authenticates a visitor against the shop backend and
// persists the returned credential.
type LoginHandler struct {
	Guard *session.Guard
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"errors": []string{"request body must be JSON"},
		})
		return
	}

	// Client-side form checks, mirrored server-side: shown inline, never
	// forwarded to the backend.
	var fieldErrors []string
	if req.Email == "" {
		fieldErrors = append(fieldErrors, "email is required")
	}
	if req.Password == "" {
		fieldErrors = append(fieldErrors, "password is required")
	}
	if len(fieldErrors) > 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors})
		return
	}

	visitorID := visitorFromCtx(r.Context())
	state, err := h.Guard.Login(r.Context(), visitorID, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, map[string]any{
				"errors": []string{"invalid email or password"},
			})
			return
		}

		// Network or backend trouble: a generic communication error, the
		// details stay in the logs.
		log.Error("login failed", "error", err)
		httpx.WriteJSON(w, http.StatusBadGateway, map[string]any{
			"errors": []string{"could not reach the shop service, please try again"},
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": state.Authenticated,
		"role":          state.Role,
		"userId":        state.UserID,
		"userName":      state.UserName,
	})
}

// LogoutHandler clears the visitor's session. Always succeeds from the
// visitor's point of view.
type LogoutHandler struct {
	Guard *session.Guard
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	visitorID := visitorFromCtx(r.Context())
	h.Guard.Logout(r.Context(), visitorID)

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": false,
	})
}

// SessionHandler reports the current session state for nav and dropdown
// rendering. State is derived fresh on every call.
type SessionHandler struct {
	Guard *session.Guard
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	visitorID := visitorFromCtx(r.Context())
	state := h.Guard.State(r.Context(), visitorID)

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": state.Authenticated,
		"role":          state.Role,
		"userId":        state.UserID,
		"userName":      state.UserName,
	})
}
