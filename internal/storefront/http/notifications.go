package http

import (
	"net/http"
	"net/url"

	"github.com/vitacart/storefront/pkg/httpx"
)

// noticeCookie carries a one-shot notification across a redirect, the
// server-side stand-in for a toast message.
const noticeCookie = "storefront_notice"

func setNotice(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     noticeCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		SameSite: http.SameSiteLaxMode,
	})
}

// NotificationsHandler returns and clears any pending notice.
type NotificationsHandler struct{}

func (h *NotificationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var notices []string

	if cookie, err := r.Cookie(noticeCookie); err == nil && cookie.Value != "" {
		if message, err := url.QueryUnescape(cookie.Value); err == nil {
			notices = append(notices, message)
		}

		// Clear after reading: notices fire once.
		http.SetCookie(w, &http.Cookie{
			Name:   noticeCookie,
			Path:   "/",
			MaxAge: -1,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"notifications": notices,
	})
}
