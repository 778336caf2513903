package store

import (
	"context"
	"errors"
	"time"

	"github.com/vitacart/storefront/internal/storefront/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. The persisted credential is the only shared mutable state
// in the system, so the surface stays deliberately small.
type Store interface {
	Credentials() Credentials

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil error and
	// rolling back otherwise. Used for the purge path, which must remove the
	// token and profile together with no window where one exists alone.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Credentials interface {
	// Get returns the persisted credential for a visitor.
	Get(ctx context.Context, visitorID string) (domain.Credential, error)

	// Put stores a credential, replacing any previous one for the visitor.
	// Credentials are only ever mutated by full replacement.
	Put(ctx context.Context, c domain.Credential) error

	// Delete removes the credential and its companion profile together.
	Delete(ctx context.Context, visitorID string) error

	// DeleteExpiredBefore removes credentials whose tokens expired before
	// cutoff. Housekeeping only; the guard purges on detection regardless.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
