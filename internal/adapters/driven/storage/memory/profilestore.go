package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.NutritionProfile
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[string]domain.NutritionProfile),
	}
}

// Save stores or replaces a profile.
func (s *ProfileStore) Save(_ context.Context, profile domain.NutritionProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.DietaryRestrictions = append([]string(nil), profile.DietaryRestrictions...)
	s.profiles[profile.UserID] = profile
	return nil
}

// Get retrieves a user's profile.
func (s *ProfileStore) Get(_ context.Context, userID string) (*domain.NutritionProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	profile.DietaryRestrictions = append([]string(nil), profile.DietaryRestrictions...)
	return &profile, nil
}
