package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// Ensure PreferenceStore implements the interface.
var _ driven.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore is an in-memory implementation of driven.PreferenceStore.
type PreferenceStore struct {
	mu    sync.RWMutex
	prefs map[string]map[string]domain.FoodPreference // user -> normalized name -> pref
}

// NewPreferenceStore creates a new in-memory preference store.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{
		prefs: make(map[string]map[string]domain.FoodPreference),
	}
}

// Set stores or replaces a preference.
func (s *PreferenceStore) Set(_ context.Context, userID string, pref domain.FoodPreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	userPrefs, ok := s.prefs[userID]
	if !ok {
		userPrefs = make(map[string]domain.FoodPreference)
		s.prefs[userID] = userPrefs
	}
	userPrefs[domain.NormalizeName(pref.FoodName)] = pref
	return nil
}

// Delete removes a preference.
func (s *PreferenceStore) Delete(_ context.Context, userID, foodName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.NormalizeName(foodName)
	if _, ok := s.prefs[userID][key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.prefs[userID], key)
	return nil
}

// List returns all of a user's preferences.
func (s *PreferenceStore) List(_ context.Context, userID string) ([]domain.FoodPreference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.FoodPreference, 0, len(s.prefs[userID]))
	for _, pref := range s.prefs[userID] {
		result = append(result, pref)
	}
	return result, nil
}
