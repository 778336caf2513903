package shopapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitacart/storefront/pkg/shopapi"
)

func writeEnvelope(w http.ResponseWriter, status int, hasSuccess bool, value any, errs []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var raw json.RawMessage
	if value != nil {
		raw, _ = json.Marshal(value)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"hasSuccess": hasSuccess,
		"value":      raw,
		"errors":     errs,
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/Auth/login", r.URL.Path)

			var req shopapi.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "jo@example.com", req.Email)

			writeEnvelope(w, http.StatusOK, true, shopapi.LoginResult{
				Token: "a.b.c",
				ID:    "user-1",
				Name:  "Jo",
				Email: req.Email,
				Role:  "User",
			}, nil)
		}))
		defer srv.Close()

		client := shopapi.NewClient(srv.URL)
		result, err := client.Login(context.Background(), "jo@example.com", "hunter2")
		require.NoError(t, err)
		require.Equal(t, "a.b.c", result.Token)
		require.Equal(t, "Jo", result.Name)
	})

	t.Run("bad credentials surface backend errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, false, nil, []string{"invalid email or password"})
		}))
		defer srv.Close()

		client := shopapi.NewClient(srv.URL)
		_, err := client.Login(context.Background(), "jo@example.com", "wrong")

		var apiErr *shopapi.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Contains(t, apiErr.Messages, "invalid email or password")
	})

	t.Run("network failure is wrapped, not thrown", func(t *testing.T) {
		client := shopapi.NewClient("http://127.0.0.1:0")
		_, err := client.Login(context.Background(), "jo@example.com", "hunter2")
		require.Error(t, err)
	})
}

func TestUnauthorizedFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := shopapi.NewClient(srv.URL)
	fired := 0
	client.OnUnauthorized = func() { fired++ }

	_, err := client.ListOrders(context.Background(), "stale-token", 1, 10)
	require.ErrorIs(t, err, shopapi.ErrUnauthorized)
	require.Equal(t, 1, fired)
}

func TestBearerInjection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, true, shopapi.Page[shopapi.Order]{
			Items:      []shopapi.Order{{ID: "o-1", Status: "paid"}},
			PageNumber: 1,
			PageSize:   10,
			TotalCount: 1,
		}, nil)
	}))
	defer srv.Close()

	client := shopapi.NewClient(srv.URL)
	page, err := client.ListOrders(context.Background(), "tok-123", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "o-1", page.Items[0].ID)
}

func TestPublicEndpointsOmitBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, true, shopapi.Page[shopapi.Product]{}, nil)
	}))
	defer srv.Close()

	client := shopapi.NewClient(srv.URL)
	_, err := client.ListProducts(context.Background(), 1, 20)
	require.NoError(t, err)
}
