package http

import (
	"net/http"
	"net/url"

	"github.com/vitacart/storefront/internal/storefront/session"
	"github.com/vitacart/storefront/pkg/accessx"
	"github.com/vitacart/storefront/pkg/httpx"
	"github.com/vitacart/storefront/pkg/slogx"
)

// LoginPage is where anonymous visitors are sent when they hit a
// restricted page. The originally requested path rides along so the login
// flow can return them there.
const LoginPage = "/login.html"

// GuardMiddleware evaluates the access policy before any page content is
// served. It runs at the earliest point of page handling: a denied request
// never reaches the page handler, so no protected content or data fetch
// can happen first.
func GuardMiddleware(guard *session.Guard, classifier *accessx.Classifier) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			class := classifier.Classify(r.URL.Path)
			if class == accessx.Public {
				next.ServeHTTP(w, r)
				return
			}

			log := slogx.FromContext(r.Context())
			visitorID := visitorFromCtx(r.Context())
			state := guard.State(r.Context(), visitorID)

			if accessx.Satisfied(class, state.Authenticated, state.Role) {
				next.ServeHTTP(w, r)
				return
			}

			if !state.Authenticated {
				// Send them to login, preserving the requested path.
				target := LoginPage + "?redirect=" + url.QueryEscape(r.URL.Path)
				log.Debug("redirecting anonymous visitor to login", "path", r.URL.Path)
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}

			// Authenticated but not admin: back to the home page with an
			// access-denied notice.
			log.Warn("access denied", "path", r.URL.Path, "role", state.Role)
			setNotice(w, "You do not have permission to view that page.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
		})
	}
}
