// Package profile stores API key holders.
package profile

import (
	"context"
	"sync"

	"statehouse/internal/ratelimit/models"
	"statehouse/pkg/platform/sentinel"
)

// InMemoryStore holds profiles in a map, for local runs and tests.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]models.Profile
}

func NewInMemory(profiles ...models.Profile) *InMemoryStore {
	s := &InMemoryStore{profiles: make(map[string]models.Profile, len(profiles))}
	for _, p := range profiles {
		s.profiles[p.APIKey] = p
	}
	return s
}

func (s *InMemoryStore) GetByKey(_ context.Context, apiKey string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[apiKey]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}

// Put adds or replaces a profile.
func (s *InMemoryStore) Put(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.APIKey] = p
}
