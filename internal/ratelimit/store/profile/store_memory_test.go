package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statehouse/internal/ratelimit/models"
	"statehouse/pkg/platform/sentinel"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory(models.Profile{APIKey: "k1", Tier: models.TierGold})

	p, err := s.GetByKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, models.TierGold, p.Tier)

	_, err = s.GetByKey(ctx, "missing")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	s.Put(models.Profile{APIKey: "k1", Tier: models.TierBronze})
	p, err = s.GetByKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, models.TierBronze, p.Tier)
}
