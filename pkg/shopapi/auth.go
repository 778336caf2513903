package shopapi

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token and profile record.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.doJSON(ctx, http.MethodPost, "/Auth/login", "", LoginRequest{
		Email:    email,
		Password: password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout tells the backend to invalidate the token. Best-effort: callers
// clear local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context, bearer string) error {
	return c.doJSON(ctx, http.MethodPost, "/Auth/logout", bearer, nil, nil)
}
