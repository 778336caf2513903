package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vitacart/storefront/internal/storefront/store"
)

// storeTx is a Tx-scoped Store backed by an open *sql.Tx.
type storeTx struct {
	tx *sql.Tx
}

func (t *storeTx) Credentials() store.Credentials {
	return &credentialsRepo{db: t.tx}
}

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }

// Nested transactions are not supported.
func (t *storeTx) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errors.New("sqlite: nested transactions are not supported")
}

func (t *storeTx) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errors.New("sqlite: nested transactions are not supported")
}

func (t *storeTx) ApplyMigrations() error {
	return errors.New("sqlite: cannot migrate inside a transaction")
}

func (t *storeTx) Close() error { return nil }

func (t *storeTx) Ping(ctx context.Context) error { return nil }
