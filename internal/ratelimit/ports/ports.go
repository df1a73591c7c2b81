// Package ports defines the storage interfaces the quota service depends on.
package ports

import (
	"context"
	"time"

	"statehouse/internal/ratelimit/models"
)

// ProfileStore looks up API key holders. Unknown keys return
// sentinel.ErrNotFound.
type ProfileStore interface {
	GetByKey(ctx context.Context, apiKey string) (*models.Profile, error)
}

// UsageStore counts requests per key per window. Increment returns the count
// after adding one; the counter expires at windowEnd.
type UsageStore interface {
	Increment(ctx context.Context, key string, windowEnd time.Time) (int, error)
}
