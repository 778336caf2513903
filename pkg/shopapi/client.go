// Package shopapi is a client for the shop's REST backend. The backend is
// consumed as a black box: every response follows the uniform
// {hasSuccess, value, errors} envelope, authenticated calls carry a bearer
// token, and any 401 response triggers the OnUnauthorized hook so the
// session guard can force a local logout.
package shopapi

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the shop backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// OnUnauthorized is invoked whenever any call returns HTTP 401.
	// The session guard hooks this to purge the persisted credential.
	// May be nil.
	OnUnauthorized func()
}

// NewClient creates a backend client with a sane request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
