package bucket

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "statehouse:usage:"

// RedisBucketStore implements UsageStore with Redis counters shared by every
// replica. Each counter expires when its window ends.
type RedisBucketStore struct {
	client redis.Cmdable
}

func NewRedis(client redis.Cmdable) *RedisBucketStore {
	return &RedisBucketStore{client: client}
}

func (s *RedisBucketStore) Increment(ctx context.Context, key string, windowEnd time.Time) (int, error) {
	redisKey := keyPrefix + key
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireAt(ctx, redisKey, windowEnd)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("increment usage: %w", err)
	}
	return int(incr.Val()), nil
}

// GetCurrentCount returns the count for key, zero if the window has ended.
func (s *RedisBucketStore) GetCurrentCount(ctx context.Context, key string) (int, error) {
	n, err := s.client.Get(ctx, keyPrefix+key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get usage: %w", err)
	}
	return n, nil
}
