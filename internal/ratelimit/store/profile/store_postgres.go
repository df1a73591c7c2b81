package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"statehouse/internal/ratelimit/models"
	"statehouse/pkg/platform/sentinel"
)

// PostgresStore reads API key profiles from profiles_profile.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetByKey(ctx context.Context, apiKey string) (*models.Profile, error) {
	var tier string
	err := s.db.QueryRowContext(ctx,
		`SELECT api_tier FROM profiles_profile WHERE api_key = $1`, apiKey,
	).Scan(&tier)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &models.Profile{APIKey: apiKey, Tier: models.Tier(tier)}, nil
}
