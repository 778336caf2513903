package tokenx_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/vitacart/storefront/pkg/tokenx"
)

// mint produces a signed HS256 token from arbitrary claims, the same shape
// the shop backend issues at login.
func mint(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("round trip of minted token", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Unix()
		raw := mint(t, jwt.MapClaims{
			"exp":  exp,
			"role": "Admin",
			"sub":  "user-42",
		})

		p, err := tokenx.Decode(raw)
		require.NoError(t, err)
		require.Equal(t, exp, p.ExpiresAt.Unix())
		require.Equal(t, "Admin", p.ShortRole)
		require.Equal(t, "user-42", p.Subject)
	})

	t.Run("requires three segments", func(t *testing.T) {
		_, err := tokenx.Decode("onlyonesegment")
		require.ErrorIs(t, err, tokenx.ErrMalformedStructure)

		_, err = tokenx.Decode("two.segments")
		require.ErrorIs(t, err, tokenx.ErrMalformedStructure)

		_, err = tokenx.Decode("a.b.c.d")
		require.ErrorIs(t, err, tokenx.ErrMalformedStructure)
	})

	t.Run("rejects invalid base64 payload", func(t *testing.T) {
		_, err := tokenx.Decode("header.!!!not-base64!!!.sig")
		require.ErrorIs(t, err, tokenx.ErrInvalidEncoding)
	})

	t.Run("rejects non-object payload", func(t *testing.T) {
		seg := base64.RawURLEncoding.EncodeToString([]byte(`"just a string"`))
		_, err := tokenx.Decode("header." + seg + ".sig")
		require.ErrorIs(t, err, tokenx.ErrInvalidPayload)
	})

	t.Run("handles url-safe alphabet", func(t *testing.T) {
		// Payload chosen so the encoding contains '-' and '_' characters.
		payload := `{"sub":"ÿþ~~~?>>"}`
		seg := base64.RawURLEncoding.EncodeToString([]byte(payload))
		require.True(t, len(seg) > 0)

		p, err := tokenx.Decode("header." + seg + ".sig")
		require.NoError(t, err)
		require.NotEmpty(t, p.Subject)
	})
}

func TestValidateExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("future exp is valid", func(t *testing.T) {
		p := tokenx.Payload{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}}
		require.NoError(t, p.ValidateExpiry(now))
		require.True(t, p.Valid(now))
	})

	t.Run("past exp is expired", func(t *testing.T) {
		p := tokenx.Payload{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		}}
		require.ErrorIs(t, p.ValidateExpiry(now), tokenx.ErrExpired)
		require.False(t, p.Valid(now))
	})

	t.Run("exp equal to now is expired", func(t *testing.T) {
		p := tokenx.Payload{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now),
		}}
		require.ErrorIs(t, p.ValidateExpiry(now), tokenx.ErrExpired)
	})

	t.Run("missing exp fails closed", func(t *testing.T) {
		p := tokenx.Payload{}
		require.ErrorIs(t, p.ValidateExpiry(now), tokenx.ErrNoExpiry)
		require.False(t, p.Valid(now))
	})
}

func TestUserRole(t *testing.T) {
	t.Parallel()

	t.Run("no role claim defaults to user", func(t *testing.T) {
		require.Equal(t, tokenx.RoleUser, tokenx.Payload{}.UserRole())
	})

	t.Run("short claim", func(t *testing.T) {
		p := tokenx.Payload{ShortRole: "Admin"}
		require.Equal(t, tokenx.RoleAdmin, p.UserRole())
	})

	t.Run("namespaced claim wins over short claim", func(t *testing.T) {
		p := tokenx.Payload{ShortRole: "User", NamespacedRole: "Admin"}
		require.Equal(t, tokenx.RoleAdmin, p.UserRole())
	})

	t.Run("case insensitive", func(t *testing.T) {
		p := tokenx.Payload{ShortRole: "admin"}
		require.Equal(t, tokenx.RoleAdmin, p.UserRole())
	})

	t.Run("unrecognized role", func(t *testing.T) {
		p := tokenx.Payload{ShortRole: "superuser"}
		require.Equal(t, tokenx.RoleUnknown, p.UserRole())
	})

	t.Run("decoded namespaced claim", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix(), "role": "User"}
		claims[tokenx.RoleClaimURI] = "Admin"
		raw := mint(t, claims)

		p, err := tokenx.Decode(raw)
		require.NoError(t, err)
		require.Equal(t, tokenx.RoleAdmin, p.UserRole())
	})
}
