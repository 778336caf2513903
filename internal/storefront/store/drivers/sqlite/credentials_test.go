package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vitacart/storefront/internal/storefront/domain"
	"github.com/vitacart/storefront/internal/storefront/store"
	"github.com/vitacart/storefront/internal/storefront/store/drivers/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func sampleCredential(visitorID string, expiresAt time.Time) domain.Credential {
	return domain.Credential{
		VisitorID: visitorID,
		Token:     "h.p.s",
		Profile: domain.Profile{
			UserID: "user-1",
			Name:   "Jo",
			Email:  "jo@example.com",
			Role:   "User",
		},
		ExpiresAt: expiresAt,
	}
}

func TestCredentialsPutGet(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, st.Credentials().Put(ctx, sampleCredential("v-1", exp)))

	got, err := st.Credentials().Get(ctx, "v-1")
	require.NoError(t, err)
	require.Equal(t, "h.p.s", got.Token)
	require.Equal(t, "Jo", got.Profile.Name)
	require.Equal(t, exp, got.ExpiresAt.UTC())
}

func TestCredentialsReplaceOnly(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	exp := time.Now().Add(time.Hour)
	require.NoError(t, st.Credentials().Put(ctx, sampleCredential("v-1", exp)))

	replacement := sampleCredential("v-1", exp.Add(time.Hour))
	replacement.Token = "new.token.sig"
	replacement.Profile.Role = "Admin"
	require.NoError(t, st.Credentials().Put(ctx, replacement))

	got, err := st.Credentials().Get(ctx, "v-1")
	require.NoError(t, err)
	require.Equal(t, "new.token.sig", got.Token)
	require.Equal(t, "Admin", got.Profile.Role)
}

func TestCredentialsDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Credentials().Put(ctx, sampleCredential("v-1", time.Now().Add(time.Hour))))
	require.NoError(t, st.Credentials().Delete(ctx, "v-1"))

	_, err := st.Credentials().Get(ctx, "v-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting again is a no-op, not an error.
	require.NoError(t, st.Credentials().Delete(ctx, "v-1"))
}

func TestCredentialsDeleteExpiredBefore(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	now := time.Now()
	require.NoError(t, st.Credentials().Put(ctx, sampleCredential("stale", now.Add(-time.Hour))))
	require.NoError(t, st.Credentials().Put(ctx, sampleCredential("fresh", now.Add(time.Hour))))

	purged, err := st.Credentials().DeleteExpiredBefore(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, purged)

	_, err = st.Credentials().Get(ctx, "stale")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Credentials().Get(ctx, "fresh")
	require.NoError(t, err)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Credentials().Put(ctx, sampleCredential("v-1", time.Now().Add(time.Hour))))

	sentinel := context.Canceled
	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Credentials().Delete(ctx, "v-1"))
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	// The delete must have been rolled back.
	_, err = st.Credentials().Get(ctx, "v-1")
	require.NoError(t, err)
}
