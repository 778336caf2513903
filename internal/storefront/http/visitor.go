package http

import (
	"context"
	"net/http"

	"github.com/vitacart/storefront/pkg/httpx"
	"github.com/vitacart/storefront/pkg/idx"
)

// VisitorCookie is the fixed name of the cookie keying the persisted
// credential store. It identifies a browser, not a user.
const VisitorCookie = "storefront_visitor"

type ctxKey string

const ctxKeyVisitorID ctxKey = "visitor_id"

// visitorFromCtx returns the visitor id attached by VisitorMiddleware.
func visitorFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyVisitorID).(string); ok {
		return v
	}
	return ""
}

// VisitorMiddleware ensures every request carries a visitor id cookie,
// issuing a fresh ULID on first contact, and attaches the id to context.
func VisitorMiddleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitorID := ""
			if cookie, err := r.Cookie(VisitorCookie); err == nil {
				if id, err := idx.Parse(cookie.Value); err == nil {
					visitorID = id.String()
				}
			}

			if visitorID == "" {
				visitorID = idx.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookie,
					Value:    visitorID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), ctxKeyVisitorID, visitorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
