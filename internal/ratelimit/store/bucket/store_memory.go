// Package bucket counts requests per key in fixed windows.
package bucket

import (
	"context"
	"sync"
	"time"
)

// InMemoryBucketStore implements UsageStore with process-local counters.
// Counts are not shared between replicas; use RedisBucketStore for that.
type InMemoryBucketStore struct {
	mu      sync.Mutex
	buckets map[string]*window
	now     func() time.Time
}

type window struct {
	count int
	end   time.Time
}

// NewInMemoryBucketStore creates a new in-memory bucket store.
func NewInMemoryBucketStore() *InMemoryBucketStore {
	return &InMemoryBucketStore{
		buckets: make(map[string]*window),
		now:     time.Now,
	}
}

// Increment adds one to key's counter, starting a new window when the
// previous one has ended.
func (s *InMemoryBucketStore) Increment(_ context.Context, key string, windowEnd time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.cleanup(now)
	w := s.buckets[key]
	if w == nil {
		w = &window{end: windowEnd}
		s.buckets[key] = w
	}
	w.count++
	return w.count, nil
}

// GetCurrentCount returns the count in key's live window.
func (s *InMemoryBucketStore) GetCurrentCount(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanup(s.now())
	if w := s.buckets[key]; w != nil {
		return w.count, nil
	}
	return 0, nil
}

// cleanup drops ended windows. Must be called while holding s.mu.
func (s *InMemoryBucketStore) cleanup(now time.Time) {
	for key, w := range s.buckets {
		if !now.Before(w.end) {
			delete(s.buckets, key)
		}
	}
}
