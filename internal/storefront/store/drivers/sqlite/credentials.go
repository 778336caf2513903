package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vitacart/storefront/internal/storefront/domain"
)

type credentialsRepo struct {
	db dbtx
}

func (r *credentialsRepo) Get(ctx context.Context, visitorID string) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT visitor_id, token, profile_json, expires_at, created_at, updated_at
		FROM credentials
		WHERE visitor_id = ?`, visitorID)

	var (
		c           domain.Credential
		profileJSON string
	)
	err := row.Scan(&c.VisitorID, &c.Token, &profileJSON, &c.ExpiresAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}

	if err := json.Unmarshal([]byte(profileJSON), &c.Profile); err != nil {
		return domain.Credential{}, fmt.Errorf("sqlite: corrupt profile record: %w", err)
	}

	return c, nil
}

func (r *credentialsRepo) Put(ctx context.Context, c domain.Credential) error {
	profileJSON, err := json.Marshal(c.Profile)
	if err != nil {
		return fmt.Errorf("sqlite: encode profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO credentials (visitor_id, token, profile_json, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (visitor_id) DO UPDATE SET
			token = excluded.token,
			profile_json = excluded.profile_json,
			expires_at = excluded.expires_at,
			updated_at = CURRENT_TIMESTAMP`,
		c.VisitorID, c.Token, string(profileJSON), c.ExpiresAt.UTC())
	return err
}

func (r *credentialsRepo) Delete(ctx context.Context, visitorID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE visitor_id = ?`, visitorID)
	return err
}

func (r *credentialsRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE expires_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
